package dto

type ConversationMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Message             string                `json:"message" validate:"required"`
	Type                string                `json:"type" validate:"required,oneof=provider seeker"`
	Language            string                `json:"language" validate:"required,oneof=en es"`
	ConversationHistory []ConversationMessage `json:"conversationHistory" validate:"omitempty,dive"`
}

type SupplySearchResult struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Quantity     float64  `json:"quantity"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
	MapLink      string   `json:"mapLink,omitempty"`
	StaticMapURL string   `json:"staticMapUrl,omitempty"`
	Available    bool     `json:"available"`
}

// ChatResponse is one completed turn. SuppliesFound is omitted entirely when
// no search ran or the search matched nothing.
type ChatResponse struct {
	Response       string               `json:"response"`
	SupplyRecorded bool                 `json:"supplyRecorded"`
	SuppliesFound  []SupplySearchResult `json:"suppliesFound,omitempty"`
}
