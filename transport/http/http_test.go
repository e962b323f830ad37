package http_test

import (
	"desk/config"
	"desk/infras/otel/mocks"
	boardMocks "desk/internal/domains/board/mocks"
	recordMocks "desk/internal/domains/record/mocks"
	"desk/internal/domains/record/model/dto"
	boardHandler "desk/internal/handlers/board"
	recordHandler "desk/internal/handlers/record"
	"desk/shared/cache"
	"desk/shared/failure"
	transport "desk/transport/http"
	"desk/transport/http/middleware"
	"desk/transport/http/router"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, cfg *config.Config) (*transport.HTTP, *recordMocks.MockRecord) {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := mocks.NewOtel()
	records := recordMocks.NewMockRecord(ctrl)

	r := router.New(router.DomainHandlers{
		Record: recordHandler.New(records, otel),
		Board:  boardHandler.New(boardMocks.NewMockBoard(ctrl), otel),
	})

	mw := middleware.NewAppMiddleware(otel, cfg, cache.NewRedisCache(nil, otel))

	return transport.New(cfg, r, mw, transport.Resources{Otel: otel}), records
}

func TestHTTP_ServeHTTP(t *testing.T) {
	server, records := newServer(t, &config.Config{})

	records.EXPECT().Settings(gomock.Any()).Return(dto.SettingsResponse{AppTitle: "Bookings"})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHTTP_NotFound(t *testing.T) {
	server, _ := newServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/bookings", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"ROUTE NOT FOUND"}`, rec.Body.String())
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	server, _ := newServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/bookings")
}

func TestHTTP_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://desk.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	server, records := newServer(t, cfg)

	records.EXPECT().Settings(gomock.Any()).Return(dto.SettingsResponse{})

	req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	req.Header.Set("Origin", "https://desk.example.com")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "https://desk.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTP_RateLimiterWithoutRedis(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	server, records := newServer(t, cfg)

	records.EXPECT().Settings(gomock.Any()).Return(dto.SettingsResponse{}).Times(2)

	for range 2 {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestHTTP_InitializesStoresOnce(t *testing.T) {
	server, records := newServer(t, &config.Config{})
	server.Resources.Records = records

	records.EXPECT().EnsureInitialized(gomock.Any()).Return(nil).Times(1)
	records.EXPECT().Settings(gomock.Any()).Return(dto.SettingsResponse{}).Times(2)

	for range 2 {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestHTTP_StoreInitializationFailureStillServes(t *testing.T) {
	server, records := newServer(t, &config.Config{})
	server.Resources.Records = records

	records.EXPECT().EnsureInitialized(gomock.Any()).
		Return(failure.StorageWrite(errors.New("permission denied")))
	records.EXPECT().Settings(gomock.Any()).Return(dto.SettingsResponse{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
}
