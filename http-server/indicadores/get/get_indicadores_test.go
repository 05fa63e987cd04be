package get

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"turnos-backend/internal/storage"
)

type MockIndicatorProvider struct {
	mock.Mock
}

func (m *MockIndicatorProvider) GetIndicator(ctx context.Context, name string) ([]storage.IndicatorValue, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.([]storage.IndicatorValue), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(provider IndicatorProvider) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/api/indicadores/{indicador}", GetIndicador(slog.Default(), provider))
	return router
}

func TestGetIndicador_Success(t *testing.T) {
	mockProvider := new(MockIndicatorProvider)
	mockProvider.On("GetIndicator", mock.Anything, "uf").Return([]storage.IndicatorValue{
		{Fecha: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Valor: 39250.12},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/indicadores/uf", nil)
	rr := httptest.NewRecorder()
	newRouter(mockProvider).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "39250.12")
	mockProvider.AssertExpectations(t)
}

func TestGetIndicador_Unknown(t *testing.T) {
	mockProvider := new(MockIndicatorProvider)
	mockProvider.On("GetIndicator", mock.Anything, "bitcoin").
		Return(nil, storage.ErrUnknownIndicator)

	req := httptest.NewRequest(http.MethodGet, "/api/indicadores/bitcoin", nil)
	rr := httptest.NewRecorder()
	newRouter(mockProvider).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
