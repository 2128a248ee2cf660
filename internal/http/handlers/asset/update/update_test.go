package update

import (
	"bytes"
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
	"github.com/magabrotheeeer/asset-inventory/internal/models"
	"github.com/magabrotheeeer/asset-inventory/internal/storage"
)

type AssetServiceMock struct {
	mock.Mock
}

func (m *AssetServiceMock) Update(ctx context.Context, id int, patch models.PatchAsset) (*models.Asset, error) {
	args := m.Called(ctx, id, patch)
	asset, _ := args.Get(0).(*models.Asset)
	return asset, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRequestWithID(t *testing.T, id string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/assets/"+id, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateHandler_MergePatchBody(t *testing.T) {
	serviceMock := new(AssetServiceMock)
	handler := New(newNoopLogger(), serviceMock)

	// в запросе location задан, status равен null: до сервиса доходит
	// patch только с location, статус остаётся нетронутым
	location := "Warehouse"
	wantPatch := models.PatchAsset{Location: &location}
	updated := &models.Asset{ID: 1, Name: "Laptop", Location: "Warehouse", Status: "active"}

	serviceMock.On("Update", mock.Anything, 1, wantPatch).Return(updated, nil).Once()

	body := []byte(`{"location": "Warehouse", "status": null}`)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, newRequestWithID(t, "1", body))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	asset := resp.Data.(map[string]any)["asset"].(map[string]any)
	assert.Equal(t, "Warehouse", asset["location"])
	assert.Equal(t, "active", asset["status"])
	serviceMock.AssertExpectations(t)
}

func TestUpdateHandler_Failures(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           []byte
		mockErr        error
		wantMockCall   bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "bad id in url",
			id:             "abc",
			body:           []byte(`{}`),
			wantStatusCode: http.StatusBadRequest,
			wantError:      "failed to decode id from url",
		},
		{
			name:           "invalid json body",
			id:             "1",
			body:           []byte(`{broken`),
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "asset not found",
			id:             "42",
			body:           []byte(`{"status": "inactive"}`),
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
				serviceMock.On("Update", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, tt.mockErr).Once()
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newRequestWithID(t, tt.id, tt.body))

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.wantError)
			serviceMock.AssertExpectations(t)
		})
	}
}
