package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ait/internal/api/controllers"
	"ait/internal/config"
	"ait/internal/services"
	mem "ait/pkg/memcache"
	"ait/pkg/metrics"
	"ait/pkg/middleware"
	"ait/pkg/utils"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Default()
	cfg.Server.GinMode = "test"
	cfg.Server.CORSAllowedOrigins = []string{"https://ait.example"}

	log := zap.NewNop()
	plannerBackend := utils.UnconfiguredBackend("planner", "gemini", log)
	chatBackend := utils.UnconfiguredBackend("chat", "openai", log)
	mailer := services.NewConsoleMailService(cfg.Mail.From, "AI Tourism", io.Discard, log)

	r, err := ProvideRouter(RouterParams{
		Config:   cfg,
		Logger:   log,
		Registry: metrics.InitRegistry(),
		Pages:    controllers.NewPagesController(),
		Planner: controllers.NewPlannerController(
			services.NewPlannerService(plannerBackend, mem.NewItineraryCache(0), services.DefaultBudgetTable(), cfg.Planner.MaxTripDays, log),
			services.NewPDFService(),
			log,
		),
		Chat:    controllers.NewChatController(services.NewChatService(chatBackend, log)),
		Contact: controllers.NewContactController(services.NewContactService(mailer, cfg.Mail.Recipients), log),
		System:  controllers.NewSystemController(plannerBackend, chatBackend, mailer),
	})
	require.NoError(t, err)
	return r
}

func TestRouter_ChatAliases(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/chatbot-response/", "/chat-api/"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"reply":"`+services.ReplyUnavailable+`"}`, w.Body.String(), path)
		assert.NotEmpty(t, w.Header().Get(middleware.TraceIDHeader))
	}
}

func TestRouter_StaticAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".nav")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ait_http_requests_total")
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/itinerary", nil)
	req.Header.Set("Origin", "https://ait.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://ait.example", w.Header().Get("Access-Control-Allow-Origin"))
}
