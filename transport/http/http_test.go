package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pororo/config"
	kafkaMocks "pororo/infras/kafka/mocks"
	"pororo/infras/otel/mocks"
	"pororo/internal/domains/booking/event"
	"pororo/internal/domains/booking/repository"
	"pororo/internal/domains/booking/service"
	"pororo/internal/handlers/booking"
	"pororo/shared/cache"
	"pororo/shared/constant"
	"pororo/transport/http/middleware"
	"pororo/transport/http/router"
)

func newTestHTTP(t *testing.T) *HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}

	repo, err := repository.New(cfg, mocks.NewOtel())
	require.NoError(t, err)

	svc := service.New(repo, event.NewPublisher(cfg, nil, mocks.NewOtel()), mocks.NewOtel())
	r := router.New(router.DomainHandlers{Booking: booking.New(svc, mocks.NewOtel())})
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(nil, mocks.NewOtel()))

	return New(cfg, r, mw, mocks.NewOtel(), kafkaMocks.NewMockClient(ctrl))
}

func TestHTTP_Health(t *testing.T) {
	tests := []struct {
		name       string
		state      ServerState
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ready",
			state:      ServerStateReady,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"OK"}`,
		},
		{
			name:       "grace period",
			state:      ServerStateInGracePeriod,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"message":"SERVER PREPARING TO SHUT DOWN"}`,
		},
		{
			name:       "cleanup period",
			state:      ServerStateInCleanupPeriod,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"message":"SERVER UNHEALTHY"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHTTP(t)
			h.setup()
			h.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHTTP_ServeHTTPRoutesBookings(t *testing.T) {
	h := newTestHTTP(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

	assert.Equal(t, ServerStateReady, h.State())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"No bookings found."}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
