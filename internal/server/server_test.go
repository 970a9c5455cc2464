package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"knowex-be/internal/bootstrap"
	"knowex-be/internal/config"
	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/logger"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/pkg/navigation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                     `json:"success"`
	Code    int                      `json:"code"`
	Message string                   `json:"message"`
	Data    json.RawMessage          `json:"data"`
	Error   *serverutils.ErrorDetail `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App:     config.AppConfig{Port: "0", Environment: "test", CorsAllowedOrigins: "*"},
		Session: config.SessionConfig{TTL: time.Hour},
		Simulation: config.SimulationConfig{
			ParseDelay:         5 * time.Millisecond,
			EnhancementDelay:   5 * time.Millisecond,
			ClusteringDelay:    5 * time.Millisecond,
			BuildDelay:         5 * time.Millisecond,
			VisualizationDelay: 5 * time.Millisecond,
		},
	}
	container := bootstrap.NewContainerWithLogger(cfg, logger.NewNopLogger(), logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go container.WebSocketHub.Run(ctx)
	require.NoError(t, container.ConsumerService.Consume(ctx))
	t.Cleanup(func() {
		container.ConsumerService.Wait()
		cancel()
		container.Close()
	})

	return New(cfg, container).GetApp()
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func doJSON(t *testing.T, app *fiber.App, method, path, sessionID string, body any) (int, envelope) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set(serverutils.SessionHeader, sessionID)
	}
	return do(t, app, req)
}

func upload(t *testing.T, app *fiber.App, sessionID, fileName string) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, _ = part.Write([]byte("id,value\n1,2\n"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/wizard/v1/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	req.Header.Set(serverutils.SessionHeader, sessionID)
	return do(t, app, req)
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func createSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, env := doJSON(t, app, http.MethodPost, "/api/session/v1", "", nil)
	require.Equal(t, http.StatusOK, status)
	return decode[dto.SessionResponse](t, env).Id
}

func TestSessionHeaderRequired(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/api/wizard/v1", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusBadRequest, env.Code)

	status, _ = doJSON(t, app, http.MethodGet, "/api/wizard/v1", "missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSessionLifecycle(t *testing.T) {
	app := newTestApp(t)
	id := createSession(t, app)

	status, env := doJSON(t, app, http.MethodGet, "/api/session/v1", id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, decode[dto.SessionResponse](t, env).Id)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/session/v1", id, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/session/v1", id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestWizardBuildOverHTTP(t *testing.T) {
	app := newTestApp(t)
	id := createSession(t, app)

	status, env := doJSON(t, app, http.MethodPost, "/api/wizard/v1/build", id, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid configuration", env.Error.Title)
	assert.Equal(t, "Please select a dataset and at least one column", env.Error.Description)

	status, env = doJSON(t, app, http.MethodPut, "/api/wizard/v1/dataset", id, dto.SelectDatasetRequest{DatasetId: "incident_tickets"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, decode[dto.WizardStateResponse](t, env).CurrentStep)

	status, _ = doJSON(t, app, http.MethodPost, "/api/wizard/v1/build", id, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/wizard/v1/build", id, nil)
	assert.Equal(t, http.StatusConflict, status)

	assert.Eventually(t, func() bool {
		_, env := doJSON(t, app, http.MethodGet, "/api/wizard/v1", id, nil)
		return decode[dto.WizardStateResponse](t, env).Build.Complete
	}, 2*time.Second, 10*time.Millisecond)

	_, env = doJSON(t, app, http.MethodGet, "/api/wizard/v1/visualizations", id, nil)
	viz := decode[dto.VisualizationsResponse](t, env)
	require.Len(t, viz.Views, 2)
	assert.Equal(t, "ready", viz.Views[0].Status)
}

func TestGoToStepRequiresStep(t *testing.T) {
	app := newTestApp(t)
	id := createSession(t, app)

	status, _ := doJSON(t, app, http.MethodPut, "/api/wizard/v1/step", id, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := doJSON(t, app, http.MethodPut, "/api/wizard/v1/step", id, map[string]any{"step": 4})
	require.Equal(t, http.StatusOK, status)
	assert.False(t, decode[dto.WizardActionResponse](t, env).Changed)
}

func TestUploadOverHTTP(t *testing.T) {
	app := newTestApp(t)
	id := createSession(t, app)

	status, env := upload(t, app, id, "slides.pptx")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid file format", env.Error.Title)
	assert.Equal(t, "Please upload a CSV or Excel file", env.Message)

	status, env = upload(t, app, id, "data.xls")
	require.Equal(t, http.StatusOK, status)
	res := decode[dto.UploadResponse](t, env)
	assert.Equal(t, "Successfully uploaded data.xls", res.Description)
	assert.Equal(t, "uploaded", res.State.Dataset.Type)

	status, env = doJSON(t, app, http.MethodDelete, "/api/wizard/v1/upload", id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, decode[dto.WizardStateResponse](t, env).Dataset)
}

func TestEnhancementOverHTTP(t *testing.T) {
	app := newTestApp(t)
	id := createSession(t, app)

	status, env := doJSON(t, app, http.MethodGet, "/api/enhancement/v1/techniques", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.TechniqueResponse](t, env), 4)

	status, _ = doJSON(t, app, http.MethodPatch, "/api/enhancement/v1/keyword_boost/config", id, map[string]any{"temperature": 0.5})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPatch, "/api/enhancement/v1/topic_clustering/config", id, map[string]any{"temperature": 1.5})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = doJSON(t, app, http.MethodPatch, "/api/enhancement/v1/topic_clustering/config", id, map[string]any{
		"custom_params": map[string]any{"minClusterSize": 4},
	})
	require.Equal(t, http.StatusOK, status)
	cfg := decode[dto.TechniqueStateResponse](t, env).Config
	assert.EqualValues(t, 5, cfg.CustomParams["clusterCount"])
	assert.EqualValues(t, 4, cfg.CustomParams["minClusterSize"])

	status, _ = doJSON(t, app, http.MethodPut, "/api/enhancement/v1/enabled", id, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCatalogAndNavigation(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/api/catalog/v1/datasets?channel=social", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.CatalogDatasetResponse](t, env), 2)

	status, _ = doJSON(t, app, http.MethodGet, "/api/catalog/v1/knowledge-bases/kb-9", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = doJSON(t, app, http.MethodGet, "/api/navigation/v1/resolve?path=/chat/kb-2", "", nil)
	require.Equal(t, http.StatusOK, status)
	route := decode[navigation.Route](t, env)
	assert.Equal(t, navigation.PageChat, route.Page)
	assert.Equal(t, "kb-2", route.KnowledgeBaseID)

	status, _ = doJSON(t, app, http.MethodGet, "/api/navigation/v1/resolve", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestChatOverHTTP(t *testing.T) {
	app := newTestApp(t)
	id := createSession(t, app)

	status, env := doJSON(t, app, http.MethodPost, "/api/chat/v1/kb-1/messages", id, dto.SendChatMessageRequest{Content: "VPN failures?"})
	require.Equal(t, http.StatusOK, status)
	res := decode[dto.SendChatMessageResponse](t, env)
	assert.Equal(t, "VPN failures?", res.Sent.Content)
	assert.Len(t, res.Reply.SourceDocuments, 3)

	status, _ = doJSON(t, app, http.MethodPost, "/api/chat/v1/kb-1/messages", id, dto.SendChatMessageRequest{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = doJSON(t, app, http.MethodDelete, "/api/chat/v1/kb-1/messages", id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[dto.ConversationResponse](t, env).Messages)
}

func TestWebSocketRequiresUpgrade(t *testing.T) {
	app := newTestApp(t)
	id := createSession(t, app)

	status, _ := doJSON(t, app, http.MethodGet, "/api/ws?session="+id, "", nil)
	assert.Equal(t, http.StatusUpgradeRequired, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/ws?session=nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
