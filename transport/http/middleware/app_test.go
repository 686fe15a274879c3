package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pororo/config"
	"pororo/infras/otel/mocks"
	"pororo/shared/cache"
	cacheMocks "pororo/shared/cache/mocks"
	"pororo/shared/constant"
	"pororo/transport/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache.NewRedisCache(nil, mocks.NewOtel()))

	t.Run("generated", func(t *testing.T) {
		var seen string

		handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		rec := httptest.NewRecorder()
		mw.RequestID(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	const key = "limiter:10.0.0.1:tester"

	tests := []struct {
		name       string
		setup      func(c *cacheMocks.MockRedisCache)
		wantStatus int
		remaining  string
	}{
		{
			name: "first request in window",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)
			},
			wantStatus: http.StatusOK,
			remaining:  "1",
		},
		{
			name: "limit exceeded",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "cache failure lets the request through",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("dial tcp: refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			c := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(c)

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, c)

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "tester")

			rec := httptest.NewRecorder()
			mw.RateLimit()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl))

	rec := httptest.NewRecorder()
	mw.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://pororo.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(nil, mocks.NewOtel()))

	req := httptest.NewRequest(http.MethodGet, "/v1/packages", nil)
	req.Header.Set("Origin", "https://pororo.example")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "https://pororo.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
