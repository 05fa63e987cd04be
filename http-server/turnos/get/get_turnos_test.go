package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"turnos-backend/internal/storage"
)

type MockShiftProvider struct {
	mock.Mock
}

func (m *MockShiftProvider) GetShiftCodes(ctx context.Context) ([]storage.ShiftCode, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]storage.ShiftCode), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGetTurnos_Success(t *testing.T) {
	mockProvider := new(MockShiftProvider)
	mockProvider.On("GetShiftCodes", mock.Anything).Return([]storage.ShiftCode{
		{Codigo: "M", WorkingMinutes: 480, Desde: "08:00", Hasta: "17:00"},
		{Codigo: "L", WorkingMinutes: 0},
	}, nil)

	handler := GetTurnos(slog.Default(), mockProvider)

	req := httptest.NewRequest(http.MethodGet, "/api/turnos", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var codes []storage.ShiftCode
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &codes)
	assert.NoError(t, err)
	assert.Len(t, codes, 2)
	assert.Equal(t, "M", codes[0].Codigo)
	assert.Equal(t, float64(480), codes[0].WorkingMinutes)

	mockProvider.AssertExpectations(t)
}

func TestGetTurnos_StorageError(t *testing.T) {
	mockProvider := new(MockShiftProvider)
	mockProvider.On("GetShiftCodes", mock.Anything).Return(nil, errors.New("connection refused"))

	handler := GetTurnos(slog.Default(), mockProvider)

	req := httptest.NewRequest(http.MethodGet, "/api/turnos", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockProvider.AssertExpectations(t)
}
