package knowledge

// Category is one of the ten fixed supply classes. The tables below are static
// configuration loaded at process start; they are never persisted.
type Category struct {
	ID          int
	Name        string
	NameES      string
	Questions   []string
	QuestionsES []string
}

const (
	// FallbackCategoryID is returned by CategoryID for names outside the
	// enumeration ("Food - Non-Perishable"). A permissive default, not an error.
	FallbackCategoryID = 2

	// UnknownCategoryName is the sentinel returned for IDs outside 1..10.
	UnknownCategoryName = "Unknown"
)

var Categories = []Category{
	{
		ID:     1,
		Name:   "Water",
		NameES: "Agua",
		Questions: []string{
			"How many bottles or gallons do you have?",
			"Are the bottles sealed/unopened?",
			"What size are the bottles?",
		},
		QuestionsES: []string{
			"¿Cuántas botellas o galones tiene?",
			"¿Están las botellas selladas/sin abrir?",
			"¿De qué tamaño son las botellas?",
		},
	},
	{
		ID:     2,
		Name:   "Food - Non-Perishable",
		NameES: "Alimentos - No Perecederos",
		Questions: []string{
			"What types of food items do you have?",
			"Are the items unexpired?",
			"How much food do you have?",
		},
		QuestionsES: []string{
			"¿Qué tipos de alimentos tiene?",
			"¿Están sin vencer?",
			"¿Cuánta comida tiene?",
		},
	},
	{
		ID:     3,
		Name:   "Medical Supplies",
		NameES: "Suministros Médicos",
		Questions: []string{
			"What specific medical supplies do you have?",
			"Are medications unexpired?",
			"Are first aid kits sealed/complete?",
		},
		QuestionsES: []string{
			"¿Qué suministros médicos específicos tiene?",
			"¿Están los medicamentos sin vencer?",
			"¿Están los botiquines sellados/completos?",
		},
	},
	{
		ID:     4,
		Name:   "Hygiene Products",
		NameES: "Productos de Higiene",
		Questions: []string{
			"What hygiene items do you have?",
			"What quantities?",
			"Are items new/unopened?",
		},
		QuestionsES: []string{
			"¿Qué artículos de higiene tiene?",
			"¿Qué cantidades?",
			"¿Son artículos nuevos/sin abrir?",
		},
	},
	{
		ID:     5,
		Name:   "Clothing",
		NameES: "Ropa",
		Questions: []string{
			"What types of clothing (adult, children, infant)?",
			"What sizes?",
			"Is the clothing clean and in good condition?",
		},
		QuestionsES: []string{
			"¿Qué tipos de ropa (adulto, niños, bebé)?",
			"¿Qué tallas?",
			"¿Está la ropa limpia y en buenas condiciones?",
		},
	},
	{
		ID:     6,
		Name:   "Bedding & Blankets",
		NameES: "Ropa de Cama y Mantas",
		Questions: []string{
			"What bedding items do you have?",
			"How many?",
			"Are items clean?",
		},
		QuestionsES: []string{
			"¿Qué artículos de cama tiene?",
			"¿Cuántos?",
			"¿Están limpios?",
		},
	},
	{
		ID:     7,
		Name:   "Cleaning Supplies",
		NameES: "Productos de Limpieza",
		Questions: []string{
			"What cleaning supplies do you have?",
			"Are containers sealed?",
			"What quantities?",
		},
		QuestionsES: []string{
			"¿Qué productos de limpieza tiene?",
			"¿Están los contenedores sellados?",
			"¿Qué cantidades?",
		},
	},
	{
		ID:     8,
		Name:   "Baby Supplies",
		NameES: "Suministros para Bebés",
		Questions: []string{
			"What baby items do you have?",
			"What sizes?",
			"Are items unexpired and sealed?",
		},
		QuestionsES: []string{
			"¿Qué artículos para bebés tiene?",
			"¿Qué tallas?",
			"¿Están sin vencer y sellados?",
		},
	},
	{
		ID:     9,
		Name:   "Flashlights & Batteries",
		NameES: "Linternas y Baterías",
		Questions: []string{
			"How many flashlights/lanterns?",
			"What types of batteries?",
			"How many batteries?",
		},
		QuestionsES: []string{
			"¿Cuántas linternas/lámparas?",
			"¿Qué tipos de baterías?",
			"¿Cuántas baterías?",
		},
	},
	{
		ID:     10,
		Name:   "Tools & Equipment",
		NameES: "Herramientas y Equipo",
		Questions: []string{
			"What tools or equipment do you have?",
			"Are they in working condition?",
			"For generators: fuel type and wattage?",
		},
		QuestionsES: []string{
			"¿Qué herramientas o equipos tiene?",
			"¿Están en condiciones de funcionamiento?",
			"Para generadores: ¿tipo de combustible y vataje?",
		},
	},
}

var categoryIDByName = func() map[string]int {
	m := make(map[string]int, len(Categories))
	for _, c := range Categories {
		m[c.Name] = c.ID
	}
	return m
}()

// CategoryID maps a canonical category name to its ID. Unknown names fall back
// to FallbackCategoryID so that a slightly off model answer still records a
// donation instead of failing the turn.
func CategoryID(name string) int {
	if id, ok := categoryIDByName[name]; ok {
		return id
	}
	return FallbackCategoryID
}

// SearchCategoryID maps a category name to its ID for search filtering.
// Unknown names return 0; callers drop non-positive IDs instead of widening
// the search to the fallback category.
func SearchCategoryID(name string) int {
	return categoryIDByName[name]
}

// CategoryName returns the localized display name for a category ID, or the
// UnknownCategoryName sentinel when the ID is outside the enumeration.
func CategoryName(id int, language string) string {
	for _, c := range Categories {
		if c.ID == id {
			if language == "es" {
				return c.NameES
			}
			return c.Name
		}
	}
	return UnknownCategoryName
}

// CategoryNames returns the canonical English names in ID order. The slice
// backs the enum constraint of both tool schemas.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, c.Name)
	}
	return names
}
