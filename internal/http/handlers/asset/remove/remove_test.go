package remove

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/asset-inventory/internal/http/response"
	"github.com/magabrotheeeer/asset-inventory/internal/storage"
)

type AssetServiceMock struct {
	mock.Mock
}

func (m *AssetServiceMock) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRequestWithID(t *testing.T, id string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/assets/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRemoveHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockErr        error
		wantMockCall   bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "removed",
			id:             "1",
			wantMockCall:   true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "bad id in url",
			id:             "abc",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "failed to decode id from url",
		},
		{
			name:           "asset not found",
			id:             "42",
			mockErr:        storage.ErrAssetNotFound,
			wantMockCall:   true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "asset not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(AssetServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.wantMockCall {
				serviceMock.On("Remove", mock.Anything, mock.AnythingOfType("int")).
					Return(tt.mockErr).Once()
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newRequestWithID(t, tt.id))

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Contains(t, resp.Error, tt.wantError)
			} else {
				data := resp.Data.(map[string]any)
				assert.Equal(t, float64(1), data["deleted_id"])
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
