package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"client-portal-service/internal/auth"
	"client-portal-service/internal/chatbot/core/domain"
	"client-portal-service/internal/chatbot/core/ports"
	"client-portal-service/internal/chatbot/core/usecase"
)

type GetUsageReportUseCase interface {
	Execute(ctx context.Context, in usecase.GetUsageReportInput) (*domain.UsageReport, error)
}

type EditAnswersUseCase interface {
	ListAnswers(ctx context.Context, clientID int64) ([]domain.MenuAnswers, error)
	SaveAnswer(ctx context.Context, in usecase.SaveAnswerInput) error
}

type ChatbotHandler struct {
	report GetUsageReportUseCase
	editor EditAnswersUseCase
}

func NewChatbotHandler(report GetUsageReportUseCase, editor EditAnswersUseCase) *ChatbotHandler {
	return &ChatbotHandler{report: report, editor: editor}
}

// GetClientReport godoc
// @Summary Chatbot usage report for the authenticated client
// @Description Aggregated menu-option usage, ranked and paginated
// @Tags Chatbot
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} UsageReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/chatbot-report [get]
func (h *ChatbotHandler) GetClientReport(c *fiber.Ctx) error {
	in := usecase.GetUsageReportInput{
		ClientID:            auth.UserID(c),
		Page:                c.QueryInt("page", 1),
		RequireSubscription: true,
	}
	return h.runReport(c, in)
}

// GetAdminReport godoc
// @Summary Chatbot usage report for a given client
// @Description Operator view of the same aggregation, keyed by client id
// @Tags Chatbot
// @Produce json
// @Param id path int true "Client user id"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} UsageReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/users/{id}/chatbot-report [get]
func (h *ChatbotHandler) GetAdminReport(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("id")
	if err != nil || clientID <= 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_client_id",
			Message: "client id must be a positive integer",
		})
	}

	in := usecase.GetUsageReportInput{
		ClientID: int64(clientID),
		Page:     c.QueryInt("page", 1),
	}
	return h.runReport(c, in)
}

func (h *ChatbotHandler) runReport(c *fiber.Ctx, in usecase.GetUsageReportInput) error {
	report, err := h.report.Execute(c.Context(), in)
	if err != nil {
		return writeChatbotError(c, err)
	}

	resp := UsageReportResponse{
		TotalInteractions: report.TotalInteractions,
		TotalRows:         report.TotalRows,
		TotalUniqueUsers:  report.TotalUniqueUsers,
		AveragePerUser:    report.AveragePerUser,
		TopTen:            toRowResponses(report.TopTen),
		Page:              report.Page,
		TotalPages:        report.TotalPages,
		Rows:              toRowResponses(report.Rows),
		GeneratedAt:       report.GeneratedAt,
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// ListAnswers godoc
// @Summary Editable chatbot answers grouped by menu
// @Tags Chatbot
// @Produce json
// @Success 200 {array} MenuAnswersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/chatbot-answers [get]
func (h *ChatbotHandler) ListAnswers(c *fiber.Ctx) error {
	menus, err := h.editor.ListAnswers(c.Context(), auth.UserID(c))
	if err != nil {
		return writeChatbotError(c, err)
	}

	resp := make([]MenuAnswersResponse, 0, len(menus))
	for _, m := range menus {
		entries := make([]AnswerEntryResponse, 0, len(m.Entries))
		for _, e := range m.Entries {
			entries = append(entries, AnswerEntryResponse{
				ID:          e.ID,
				Option:      e.Option,
				Description: e.Description,
				Text:        e.Text,
			})
		}
		resp = append(resp, MenuAnswersResponse{
			MenuID:  m.MenuID,
			Submenu: m.Submenu,
			Entries: entries,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// SaveAnswer godoc
// @Summary Update one canned chatbot answer
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param answerID path string true "Answer id"
// @Param request body SaveAnswerRequest true "New answer text"
// @Success 200 {object} SaveAnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} SaveAnswerResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/chatbot-answers/{answerID} [put]
func (h *ChatbotHandler) SaveAnswer(c *fiber.Ctx) error {
	var req SaveAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_body",
			Message: "request body must be JSON",
		})
	}

	in := usecase.SaveAnswerInput{
		ClientID: auth.UserID(c),
		AnswerID: c.Params("answerID"),
		Text:     req.Text,
	}

	err := h.editor.SaveAnswer(c.Context(), in)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(SaveAnswerResponse{
			Success: true,
			Message: "answer updated",
		})
	case errors.Is(err, usecase.ErrAnswerNotFound):
		return c.Status(http.StatusNotFound).JSON(SaveAnswerResponse{
			Success: false,
			Message: "answer not found or unchanged",
		})
	case errors.Is(err, usecase.ErrInvalidAnswer):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_answer",
			Message: err.Error(),
		})
	default:
		return writeChatbotError(c, err)
	}
}

func writeChatbotError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrChatbotAccessDenied):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Error:   "access_denied",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrClientNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "client_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrStoreUnavailable):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "store_unavailable",
			Message: "could not reach the chatbot data store",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toRowResponses(rows []domain.ReportRow) []ReportRowResponse {
	out := make([]ReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReportRowResponse{
			Label:       r.Label,
			TotalCount:  r.TotalCount,
			UniqueUsers: r.UniqueUsers,
			Users:       r.Users,
			LastSeen:    r.LastSeen,
		})
	}
	return out
}
