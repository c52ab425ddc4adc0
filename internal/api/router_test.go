package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"gazelle/internal/api"
	"gazelle/internal/api/handlers"
	"gazelle/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockOrchestrator struct {
	resp   *dto.ChatResponse
	err    error
	gotReq *dto.ChatRequest
}

func (m *mockOrchestrator) HandleMessage(_ context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	m.gotReq = req
	return m.resp, m.err
}

func newTestApp(orch *mockOrchestrator) *fiber.App {
	handler := handlers.NewChatHandler(orch, zap.NewNop())
	return api.SetupRouter(handler, zap.NewNop())
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestHealth(t *testing.T) {
	app := newTestApp(&mockOrchestrator{})
	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["timestamp"])
}

func TestChatMessageProviderTurn(t *testing.T) {
	orch := &mockOrchestrator{resp: &dto.ChatResponse{
		Response:       "Thank you so much for your generous donation!",
		SupplyRecorded: true,
	}}
	app := newTestApp(orch)

	status, body := postJSON(t, app, "/api/chat/message",
		`{"message":"I have 5 cases of water","type":"provider","language":"en"}`)

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, true, body["supplyRecorded"])
	require.Contains(t, body["response"], "Thank you")
	require.NotContains(t, body, "suppliesFound")

	require.Equal(t, "provider", orch.gotReq.Type)
	require.Equal(t, "I have 5 cases of water", orch.gotReq.Message)
}

func TestChatMessageSeekerTurnWithResults(t *testing.T) {
	orch := &mockOrchestrator{resp: &dto.ChatResponse{
		Response: "Encontré los siguientes suministros disponibles:",
		SuppliesFound: []dto.SupplySearchResult{
			{ID: 1, Name: "Agua", Category: "Agua", Location: "Centro", Available: true},
		},
	}}
	app := newTestApp(orch)

	status, body := postJSON(t, app, "/api/chat/message",
		`{"message":"Necesito agua","type":"seeker","language":"es","conversationHistory":[{"role":"user","content":"hola"},{"role":"assistant","content":"¿cómo puedo ayudar?"}]}`)

	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body["response"], "Encontré")
	require.Len(t, body["suppliesFound"], 1)
	require.Len(t, orch.gotReq.ConversationHistory, 2)
}

func TestChatMessageValidation(t *testing.T) {
	orch := &mockOrchestrator{}
	app := newTestApp(orch)

	cases := []string{
		`{"type":"provider","language":"en"}`,
		`{"message":"hi","type":"donor","language":"en"}`,
		`{"message":"hi","type":"provider","language":"fr"}`,
	}
	for _, body := range cases {
		status, decoded := postJSON(t, app, "/api/chat/message", body)
		require.Equal(t, fiber.StatusBadRequest, status, "body: %s", body)
		require.Contains(t, decoded, "error")
	}
	require.Nil(t, orch.gotReq, "orchestrator must not run on invalid input")
}

func TestChatMessageTurnFailureReturnsApology(t *testing.T) {
	orch := &mockOrchestrator{err: errors.New("claude API failed with status 529")}
	app := newTestApp(orch)

	status, body := postJSON(t, app, "/api/chat/message",
		`{"message":"hola","type":"seeker","language":"es"}`)

	require.Equal(t, fiber.StatusInternalServerError, status)
	require.Equal(t, "Lo siento, pero encontré un error. Por favor, inténtelo de nuevo.", body["response"])
	require.Equal(t, false, body["supplyRecorded"])
}

func TestChatWrongMethodOrPath(t *testing.T) {
	app := newTestApp(&mockOrchestrator{})

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/chat/message"},
		{"DELETE", "/api/chat/message"},
		{"POST", "/api/chat/other"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestStubEndpoints(t *testing.T) {
	app := newTestApp(&mockOrchestrator{})

	for path, name := range map[string]string{
		"/api/auth/login":      "Auth",
		"/api/supplies":        "Supplies",
		"/api/reservations/5":  "Reservations",
		"/api/locations":       "Locations",
		"/api/geocode/reverse": "Geocode",
	} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, name+" endpoint - not yet implemented", body["message"], path)
	}
}

func TestUnknownAPIEndpoint(t *testing.T) {
	app := newTestApp(&mockOrchestrator{})
	req := httptest.NewRequest("GET", "/api/unknown", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Endpoint not found", body["error"])
}

func TestUnknownTopLevelPath(t *testing.T) {
	app := newTestApp(&mockOrchestrator{})
	req := httptest.NewRequest("GET", "/nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "Not Found", string(raw))
}
