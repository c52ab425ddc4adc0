package handlers

import (
	"context"

	"gazelle/internal/dto"
	"gazelle/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ChatOrchestrator is implemented by *service.ChatService.
type ChatOrchestrator interface {
	HandleMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type ChatHandler struct {
	chat     ChatOrchestrator
	validate *validator.Validate
	logger   *zap.Logger
}

func NewChatHandler(chat ChatOrchestrator, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:     chat,
		validate: validator.New(),
		logger:   logger,
	}
}

// SendMessage godoc
// @Summary Process one chat turn
// @Description Forwards the message to the assistant; provider turns may record a donation, seeker turns may search available supplies
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat turn"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} dto.ChatResponse
// @Router /api/chat/message [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.chat.HandleMessage(c.Context(), &req)
	if err != nil {
		h.logger.Error("Chat turn failed", zap.String("user_type", req.Type), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ChatResponse{
			Response: service.Apology(req.Language),
		})
	}

	return c.JSON(resp)
}
