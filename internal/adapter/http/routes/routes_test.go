package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance_portal/internal/adapter/http/handlers"
	"insurance_portal/internal/adapter/http/handlers/mocks"
	"insurance_portal/internal/adapter/http/middleware"
	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func quotingRouter(t *testing.T, uc *mocks.MockIQuoteUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Service:            config.ServiceQuoting,
		JWTSecret:          "test-secret",
		SignInURL:          "/sign-in",
		AuthCookieName:     "portal_token",
		AllowedRoles:       []string{"quoting"},
		InternalServiceKey: "service-key",
	}
	return NewRouter(cfg, zap.NewNop(), Handlers{Quotes: handlers.NewQuoteHandler(uc)})
}

func TestNewRouter(t *testing.T) {
	token, err := middleware.SignToken("test-secret", middleware.Claims{
		UserID: "u-1",
		Roles:  []string{"quoting"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	cases := []struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		setup      func(uc *mocks.MockIQuoteUseCase)
		wantStatus int
	}{
		{name: "health is public", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "ping is public", method: http.MethodGet, path: "/v1/ping", wantStatus: http.StatusOK},
		{name: "metrics are public", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{
			name: "api requires a token", method: http.MethodGet, path: "/v1/quotes",
			headers:    map[string]string{"Accept": "application/json"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer token reaches the handler", method: http.MethodGet, path: "/v1/quotes",
			headers: map[string]string{"Authorization": "Bearer " + token},
			setup: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().ListQuotes(gomock.Any(), entities.QuoteFilter{}).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "service key claims a quote", method: http.MethodPatch, path: "/v1/quotes/4/claim",
			headers: map[string]string{middleware.ServiceKeyHeader: "service-key"},
			setup: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().ClaimQuote(gomock.Any(), int64(4)).Return(entities.Quote{ID: 4, Status: entities.QuoteStatusArchived}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "policy routes are not mounted", method: http.MethodGet, path: "/v1/group-policies",
			headers:    map[string]string{middleware.ServiceKeyHeader: "service-key"},
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			if tc.setup != nil {
				tc.setup(uc)
			}
			r := quotingRouter(t, uc)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}
