package service

import (
	"context"
	"errors"
	"time"

	"gazelle/internal/dto"
	"gazelle/internal/knowledge"
	"gazelle/internal/models"
	"gazelle/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// searchResultLimit caps how many matches a seeker turn returns.
const searchResultLimit = 10

// ErrNoUsableOutput is returned when the model produced neither text nor a
// recognized tool invocation. The handler maps it to the generic apology.
var ErrNoUsableOutput = errors.New("model produced no text and no recognized tool call")

// LLMClient is the outbound model dependency of the orchestrator.
// *ClaudeService satisfies it.
type LLMClient interface {
	CreateMessage(ctx context.Context, system string, history []dto.ConversationMessage, message string, tool *ClaudeTool) ([]ContentBlock, error)
}

// SupplyStore is the persistence dependency of the orchestrator.
// *repository.SupplyRepository satisfies it.
type SupplyStore interface {
	Create(ctx context.Context, supply *models.Supply) (int64, error)
	SearchAvailable(ctx context.Context, categoryIDs []int, limit int) ([]models.AvailableSupply, error)
}

// ChatService runs one conversation turn: prompt selection, a single model
// call, tool-call interpretation, and at most one store operation. It holds no
// session state; the caller supplies the full history each turn.
type ChatService struct {
	llm      LLMClient
	supplies SupplyStore
	mapbox   *config.MapboxConfig
	defaults *config.DefaultsConfig
	logger   *zap.Logger
}

func NewChatService(
	llm LLMClient,
	supplies SupplyStore,
	mapbox *config.MapboxConfig,
	defaults *config.DefaultsConfig,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		llm:      llm,
		supplies: supplies,
		mapbox:   mapbox,
		defaults: defaults,
		logger:   logger,
	}
}

// HandleMessage processes one chat turn. An error return means the turn
// failed at the HTTP level (upstream failure or unusable model output); store
// failures are absorbed into an apology response and keep the turn successful.
func (s *ChatService) HandleMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	turnID := uuid.New().String()

	system := knowledge.SystemPrompt(req.Type, req.Language)

	var tool *ClaudeTool
	if req.Type == "provider" {
		tool = SupplyExtractionTool()
	} else {
		tool = SupplySearchTool()
	}

	blocks, err := s.llm.CreateMessage(ctx, system, req.ConversationHistory, req.Message, tool)
	if err != nil {
		s.logger.Error("Model call failed",
			zap.String("turn_id", turnID),
			zap.String("user_type", req.Type),
			zap.Error(err),
		)
		return nil, err
	}

	resp := &dto.ChatResponse{}
	var responseText string

	for _, block := range blocks {
		switch {
		case block.Type == "text":
			// Last text block wins if the model emits several
			responseText = block.Text

		case block.Type == "tool_use" && block.Name == RecordDonationToolName:
			resp.Response, resp.SupplyRecorded = s.recordDonation(ctx, turnID, block.Input, req.Language)

		case block.Type == "tool_use" && block.Name == SearchSuppliesToolName:
			resp.Response, resp.SuppliesFound = s.searchSupplies(ctx, turnID, block.Input, req.Language)

		default:
			s.logger.Warn("Unrecognized content block",
				zap.String("turn_id", turnID),
				zap.String("type", block.Type),
				zap.String("name", block.Name),
			)
		}
	}

	// A handled tool sets the response; otherwise fall back to the model's
	// text. Nothing at all is a turn-level failure.
	if resp.Response == "" {
		if responseText == "" {
			return nil, ErrNoUsableOutput
		}
		resp.Response = responseText
	}

	return resp, nil
}

// recordDonation validates a record_supply_donation payload and persists it.
// Validation failure skips persistence without a user-visible error; a store
// failure substitutes the localized apology and is only logged.
func (s *ChatService) recordDonation(ctx context.Context, turnID string, input map[string]any, language string) (string, bool) {
	extracted, missing := ValidateSupplyData(input)
	if extracted == nil {
		// Insufficient data: skip persistence and let the model's own text
		// carry the reply
		s.logger.Warn("Donation payload failed validation",
			zap.String("turn_id", turnID),
			zap.Strings("missing_fields", missing),
		)
		return "", false
	}

	supply := &models.Supply{
		Name:           sanitizeUTF8(SupplyDescription(extracted)),
		CategoryID:     knowledge.CategoryID(extracted.Category),
		LocationID:     s.defaults.LocationID,
		Quantity:       extracted.Quantity,
		AddedByUserID:  s.defaults.UserID,
		Status:         models.SupplyStatusAvailable,
		ExpirationDate: parseExpiration(extracted.ExpirationDate),
	}

	id, err := s.supplies.Create(ctx, supply)
	if err != nil {
		s.logger.Error("Failed to persist donation",
			zap.String("turn_id", turnID),
			zap.String("category", extracted.Category),
			zap.Error(err),
		)
		return Apology(language), false
	}

	s.logger.Info("Donation recorded",
		zap.String("turn_id", turnID),
		zap.Int64("supply_id", id),
		zap.Int("category_id", supply.CategoryID),
		zap.Float64("quantity", supply.Quantity),
	)

	return donationThanks(language), true
}

// searchSupplies runs a search_available_supplies payload against the store
// and formats the matches. The returned slice is nil when nothing matched so
// that suppliesFound is omitted from the response body.
func (s *ChatService) searchSupplies(ctx context.Context, turnID string, input map[string]any, language string) (string, []dto.SupplySearchResult) {
	categoryIDs := requestedCategoryIDs(input)
	if len(categoryIDs) == 0 {
		return FormatSearchResults(nil, language), nil
	}

	rows, err := s.supplies.SearchAvailable(ctx, categoryIDs, searchResultLimit)
	if err != nil {
		s.logger.Error("Supply search failed",
			zap.String("turn_id", turnID),
			zap.Ints("category_ids", categoryIDs),
			zap.Error(err),
		)
		return Apology(language), nil
	}

	results := make([]dto.SupplySearchResult, 0, len(rows))
	for _, row := range rows {
		result := dto.SupplySearchResult{
			ID:        row.ID,
			Name:      row.Name,
			Category:  knowledge.CategoryName(row.CategoryID, language),
			Quantity:  row.Quantity,
			Location:  row.LocationName,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Available: true,
		}
		if row.Latitude != nil && row.Longitude != nil {
			result.MapLink = MapLink(*row.Latitude, *row.Longitude)
			if s.mapbox.Token != "" {
				result.StaticMapURL = StaticMapURL(*row.Latitude, *row.Longitude,
					s.mapbox.Token, s.mapbox.MapWidth, s.mapbox.MapHeight, s.mapbox.MapZoom)
			}
		}
		results = append(results, result)
	}

	s.logger.Info("Supply search completed",
		zap.String("turn_id", turnID),
		zap.Ints("category_ids", categoryIDs),
		zap.Int("matches", len(results)),
	)

	if len(results) == 0 {
		return FormatSearchResults(nil, language), nil
	}
	return FormatSearchResults(results, language), results
}

// requestedCategoryIDs maps the tool payload's category names to IDs,
// discarding ones outside the enumeration.
func requestedCategoryIDs(input map[string]any) []int {
	raw, _ := input["categories"].([]any)
	ids := make([]int, 0, len(raw))
	for _, v := range raw {
		name, ok := v.(string)
		if !ok {
			continue
		}
		if id := knowledge.SearchCategoryID(name); id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func parseExpiration(isoDate string) *time.Time {
	if isoDate == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return nil
	}
	return &t
}

func donationThanks(language string) string {
	if language == "es" {
		return "¡Muchas gracias por su generosa donación! La he registrado en nuestro sistema y nos pondremos en contacto cuando alguien cerca necesite estos suministros."
	}
	return "Thank you so much for your generous donation! I've recorded it in our system and we'll reach out when someone nearby needs these supplies."
}

// Apology is the localized generic apology used for turn-level failures and
// absorbed store errors.
func Apology(language string) string {
	if language == "es" {
		return "Lo siento, pero encontré un error. Por favor, inténtelo de nuevo."
	}
	return "I apologize, but I encountered an error. Please try again."
}
