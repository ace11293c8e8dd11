package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"postforge/internal/domain/entity"
	"postforge/internal/usecase"
)

type PostHandler struct {
	orchestrator *usecase.Orchestrator
	ledger       *usecase.UsageLedger
}

func NewPostHandler(orch *usecase.Orchestrator, ledger *usecase.UsageLedger) *PostHandler {
	return &PostHandler{orchestrator: orch, ledger: ledger}
}

// HandleGenerate runs the pipeline. Pipeline failures are reported inside
// the metadata error field, not as transport errors.
func (h *PostHandler) HandleGenerate(c *fiber.Ctx) error {
	var req entity.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	posts, metadata := h.orchestrator.Generate(c.Context(), req)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts":    posts,
		"metadata": metadata,
	})
}

func (h *PostHandler) HandleUsage(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.ledger.SessionSummary())
}

func (h *PostHandler) HandleUsageReset(c *fiber.Ctx) error {
	h.ledger.Reset()
	return c.Status(fiber.StatusOK).JSON(h.ledger.SessionSummary())
}

func (h *PostHandler) HandleHealth(c *fiber.Ctx) error {
	health := h.orchestrator.HealthStatus(c.Context())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":       health.Status,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"agent_status": health,
		"model_info":   health.ModelInfo,
	})
}
