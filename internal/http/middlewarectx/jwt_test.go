package middlewarectx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/asset-inventory/internal/models"
	authservice "github.com/magabrotheeeer/asset-inventory/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) ResolvePrincipal(ctx context.Context, tokenStr string) (*models.User, error) {
	args := m.Called(ctx, tokenStr)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockToken      string
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantUsername   string
	}{
		{
			name:           "valid token resolves principal",
			authHeader:     "Bearer good-token",
			mockToken:      "good-token",
			mockUser:       &models.User{Username: "alice"},
			wantStatusCode: http.StatusOK,
			wantUsername:   "alice",
		},
		{
			name:           "missing header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic abc",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid or expired token",
			authHeader:     "Bearer bad-token",
			mockToken:      "bad-token",
			mockErr:        authservice.ErrUnauthenticated,
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(AuthServiceMock)
			if tt.mockToken != "" {
				service.On("ResolvePrincipal", mock.Anything, tt.mockToken).
					Return(tt.mockUser, tt.mockErr).Once()
			}

			var gotUsername string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUsername, _ = r.Context().Value(User).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/assets", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			JWTMiddleware(service, newNoopLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantUsername, gotUsername)
			service.AssertExpectations(t)
		})
	}
}
