package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"client-portal-service/internal/auth"
	"client-portal-service/internal/chatbot/core/domain"
	"client-portal-service/internal/chatbot/core/ports"
	"client-portal-service/internal/chatbot/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeReportUseCase struct {
	ExecuteFunc func(ctx context.Context, in usecase.GetUsageReportInput) (*domain.UsageReport, error)
	LastInput   usecase.GetUsageReportInput
}

func (f *fakeReportUseCase) Execute(ctx context.Context, in usecase.GetUsageReportInput) (*domain.UsageReport, error) {
	f.LastInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return &domain.UsageReport{Page: 1, TotalPages: 1}, nil
}

type fakeEditorUseCase struct {
	ListAnswersFunc func(ctx context.Context, clientID int64) ([]domain.MenuAnswers, error)
	SaveAnswerFunc  func(ctx context.Context, in usecase.SaveAnswerInput) error
	LastSaveInput   usecase.SaveAnswerInput
}

func (f *fakeEditorUseCase) ListAnswers(ctx context.Context, clientID int64) ([]domain.MenuAnswers, error) {
	if f.ListAnswersFunc != nil {
		return f.ListAnswersFunc(ctx, clientID)
	}
	return nil, nil
}

func (f *fakeEditorUseCase) SaveAnswer(ctx context.Context, in usecase.SaveAnswerInput) error {
	f.LastSaveInput = in
	if f.SaveAnswerFunc != nil {
		return f.SaveAnswerFunc(ctx, in)
	}
	return nil
}

// helper: create fiber app with the same route shape as main
func setupChatbotApp(report GetUsageReportUseCase, editor EditAnswersUseCase) *fiber.App {
	app := fiber.New()
	h := NewChatbotHandler(report, editor)

	dashboard := app.Group("/dashboard", auth.RequireUser())
	dashboard.Get("/chatbot-report", h.GetClientReport)
	dashboard.Get("/chatbot-answers", h.ListAnswers)
	dashboard.Put("/chatbot-answers/:answerID", h.SaveAnswer)

	app.Get("/admin/users/:id/chatbot-report", h.GetAdminReport)

	return app
}

func doChatbotRequest(t *testing.T, app *fiber.App, method, path, userID string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func TestGetClientReport_Success(t *testing.T) {
	fakeReport := &fakeReportUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.GetUsageReportInput) (*domain.UsageReport, error) {
			return &domain.UsageReport{
				TotalInteractions: 12,
				TotalRows:         3,
				TotalUniqueUsers:  5,
				AveragePerUser:    2.4,
				Page:              2,
				TotalPages:        3,
				Rows: []domain.ReportRow{
					{Label: "Ver productos", TotalCount: 7, UniqueUsers: 4, Users: []string{"+111", "+222"}, LastSeen: "04/03/2024 09:00:00"},
				},
			}, nil
		},
	}

	app := setupChatbotApp(fakeReport, &fakeEditorUseCase{})

	resp, body := doChatbotRequest(t, app, http.MethodGet, "/dashboard/chatbot-report?page=2", "42", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	if fakeReport.LastInput.ClientID != 42 {
		t.Errorf("expected client id 42, got %d", fakeReport.LastInput.ClientID)
	}
	if fakeReport.LastInput.Page != 2 {
		t.Errorf("expected page 2, got %d", fakeReport.LastInput.Page)
	}
	if !fakeReport.LastInput.RequireSubscription {
		t.Errorf("client route must require an active subscription")
	}

	var respJSON UsageReportResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON.TotalInteractions != 12 || respJSON.Page != 2 {
		t.Errorf("unexpected response payload: %+v", respJSON)
	}
	if len(respJSON.Rows) != 1 || respJSON.Rows[0].Label != "Ver productos" {
		t.Errorf("unexpected rows: %+v", respJSON.Rows)
	}
}

func TestGetClientReport_MissingUserHeader(t *testing.T) {
	app := setupChatbotApp(&fakeReportUseCase{}, &fakeEditorUseCase{})

	resp, body := doChatbotRequest(t, app, http.MethodGet, "/dashboard/chatbot-report", "", nil)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusUnauthorized, resp.StatusCode, string(body))
	}
}

func TestGetClientReport_AccessDenied(t *testing.T) {
	fakeReport := &fakeReportUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.GetUsageReportInput) (*domain.UsageReport, error) {
			return nil, usecase.ErrChatbotAccessDenied
		},
	}

	app := setupChatbotApp(fakeReport, &fakeEditorUseCase{})

	resp, body := doChatbotRequest(t, app, http.MethodGet, "/dashboard/chatbot-report", "42", nil)

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusForbidden, resp.StatusCode, string(body))
	}

	var respJSON ErrorResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON.Error != "access_denied" {
		t.Errorf("expected error=access_denied, got %q", respJSON.Error)
	}
}

func TestGetClientReport_StoreUnavailable(t *testing.T) {
	fakeReport := &fakeReportUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.GetUsageReportInput) (*domain.UsageReport, error) {
			return nil, fmt.Errorf("%w: server selection timeout", ports.ErrStoreUnavailable)
		},
	}

	app := setupChatbotApp(fakeReport, &fakeEditorUseCase{})

	resp, body := doChatbotRequest(t, app, http.MethodGet, "/dashboard/chatbot-report", "42", nil)

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadGateway, resp.StatusCode, string(body))
	}
}

func TestGetAdminReport_UnknownClient(t *testing.T) {
	fakeReport := &fakeReportUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.GetUsageReportInput) (*domain.UsageReport, error) {
			return nil, usecase.ErrClientNotFound
		},
	}

	app := setupChatbotApp(fakeReport, &fakeEditorUseCase{})

	resp, body := doChatbotRequest(t, app, http.MethodGet, "/admin/users/999/chatbot-report", "", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusNotFound, resp.StatusCode, string(body))
	}
	if fakeReport.LastInput.RequireSubscription {
		t.Errorf("admin route must not require a subscription")
	}
	if fakeReport.LastInput.ClientID != 999 {
		t.Errorf("expected client id 999, got %d", fakeReport.LastInput.ClientID)
	}
}

func TestGetAdminReport_InvalidID(t *testing.T) {
	app := setupChatbotApp(&fakeReportUseCase{}, &fakeEditorUseCase{})

	resp, body := doChatbotRequest(t, app, http.MethodGet, "/admin/users/abc/chatbot-report", "", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
}

func TestListAnswers_Handler(t *testing.T) {
	fakeEditor := &fakeEditorUseCase{
		ListAnswersFunc: func(ctx context.Context, clientID int64) ([]domain.MenuAnswers, error) {
			return []domain.MenuAnswers{
				{
					MenuID:  "2",
					Submenu: "🅰️ A - Ver catálogo",
					Entries: []domain.AnswerEntry{
						{ID: "2A", Option: "A", Description: "Ver catálogo", Text: "Catálogo: https://example.com"},
					},
				},
			}, nil
		},
	}

	app := setupChatbotApp(&fakeReportUseCase{}, fakeEditor)

	resp, body := doChatbotRequest(t, app, http.MethodGet, "/dashboard/chatbot-answers", "42", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	var respJSON []MenuAnswersResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(respJSON) != 1 || len(respJSON[0].Entries) != 1 {
		t.Fatalf("unexpected response: %+v", respJSON)
	}
	if respJSON[0].Entries[0].ID != "2A" {
		t.Errorf("expected entry 2A, got %q", respJSON[0].Entries[0].ID)
	}
}

func TestSaveAnswer_Handler_Success(t *testing.T) {
	fakeEditor := &fakeEditorUseCase{}

	app := setupChatbotApp(&fakeReportUseCase{}, fakeEditor)

	reqBody := SaveAnswerRequest{Text: "Nuevo texto de respuesta"}
	resp, body := doChatbotRequest(t, app, http.MethodPut, "/dashboard/chatbot-answers/2A", "42", reqBody)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	if fakeEditor.LastSaveInput.ClientID != 42 {
		t.Errorf("expected client id 42, got %d", fakeEditor.LastSaveInput.ClientID)
	}
	if fakeEditor.LastSaveInput.AnswerID != "2A" {
		t.Errorf("expected answer id 2A, got %q", fakeEditor.LastSaveInput.AnswerID)
	}
	if fakeEditor.LastSaveInput.Text != "Nuevo texto de respuesta" {
		t.Errorf("unexpected text: %q", fakeEditor.LastSaveInput.Text)
	}

	var respJSON SaveAnswerResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if !respJSON.Success {
		t.Errorf("expected success=true")
	}
}

func TestSaveAnswer_Handler_NotFound(t *testing.T) {
	fakeEditor := &fakeEditorUseCase{
		SaveAnswerFunc: func(ctx context.Context, in usecase.SaveAnswerInput) error {
			return usecase.ErrAnswerNotFound
		},
	}

	app := setupChatbotApp(&fakeReportUseCase{}, fakeEditor)

	reqBody := SaveAnswerRequest{Text: "texto"}
	resp, body := doChatbotRequest(t, app, http.MethodPut, "/dashboard/chatbot-answers/nope", "42", reqBody)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusNotFound, resp.StatusCode, string(body))
	}

	var respJSON SaveAnswerResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON.Success {
		t.Errorf("expected success=false")
	}
}

func TestSaveAnswer_Handler_InvalidBody(t *testing.T) {
	app := setupChatbotApp(&fakeReportUseCase{}, &fakeEditorUseCase{})

	req := httptest.NewRequest(http.MethodPut, "/dashboard/chatbot-answers/2A", bytes.NewBufferString(`{"text":`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestSaveAnswer_Handler_InvalidAnswer(t *testing.T) {
	fakeEditor := &fakeEditorUseCase{
		SaveAnswerFunc: func(ctx context.Context, in usecase.SaveAnswerInput) error {
			return usecase.ErrInvalidAnswer
		},
	}

	app := setupChatbotApp(&fakeReportUseCase{}, fakeEditor)

	reqBody := SaveAnswerRequest{Text: ""}
	resp, body := doChatbotRequest(t, app, http.MethodPut, "/dashboard/chatbot-answers/2A", "42", reqBody)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
}

var errBoom = errors.New("boom")

func TestGetClientReport_InternalError(t *testing.T) {
	fakeReport := &fakeReportUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.GetUsageReportInput) (*domain.UsageReport, error) {
			return nil, errBoom
		},
	}

	app := setupChatbotApp(fakeReport, &fakeEditorUseCase{})

	resp, body := doChatbotRequest(t, app, http.MethodGet, "/dashboard/chatbot-report", "42", nil)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}
}
