package save

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

type MockPlanningSaveProvider struct {
	mock.Mock
}

func (m *MockPlanningSaveProvider) ReplacePlanning(ctx context.Context, req storage.SavePlanning) (int64, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func TestSavePlanificacion_Success(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)

	mockProvider.On("ReplacePlanning", mock.Anything, mock.MatchedBy(func(req storage.SavePlanning) bool {
		return req.Year == 2025 && req.Month == 6 && req.Sucursal == "Centro" &&
			len(req.Ruts) == 2 && len(req.Data) == 2
	})).Return(int64(3), int64(2), nil)

	handler := SavePlanificacion(slog.Default(), mockProvider)

	reqBody := `{
		"year": 2025,
		"month": 6,
		"sucursal": "Centro",
		"ruts": ["11111111-1", "22222222-2"],
		"data": [
			{"rut": "11111111-1", "fecha": "2025-06-02", "codigo": "M"},
			{"rut": "22222222-2", "fecha": "2025-06-02", "codigo": "T"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
	assert.EqualValues(t, 3, resp["eliminados"])
	assert.EqualValues(t, 2, resp["insertados"])

	mockProvider.AssertExpectations(t)
}

func TestSavePlanificacion_InvalidJSON(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)
	handler := SavePlanificacion(slog.Default(), mockProvider)

	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockProvider.AssertNotCalled(t, "ReplacePlanning")
}

func TestSavePlanificacion_EmptyRuts(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)
	handler := SavePlanificacion(slog.Default(), mockProvider)

	reqBody := `{"year": 2025, "month": 6, "sucursal": "Centro", "ruts": [], "data": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "trabajadores")
	mockProvider.AssertNotCalled(t, "ReplacePlanning")
}

// Un registro con fecha de otro mes nunca debe llegar a la base: quedaría
// fuera de la ventana de reemplazo y ningún guardado posterior lo borraría.
func TestSavePlanificacion_FechaOutsideMonth(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)
	handler := SavePlanificacion(slog.Default(), mockProvider)

	reqBody := `{
		"year": 2025,
		"month": 6,
		"sucursal": "Centro",
		"ruts": ["11111111-1"],
		"data": [{"rut": "11111111-1", "fecha": "2025-09-15", "codigo": "M"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "fuera del mes")
	mockProvider.AssertNotCalled(t, "ReplacePlanning")
}

func TestSavePlanificacion_FechaMalformed(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)
	handler := SavePlanificacion(slog.Default(), mockProvider)

	reqBody := `{
		"year": 2025,
		"month": 6,
		"sucursal": "Centro",
		"ruts": ["11111111-1"],
		"data": [{"rut": "11111111-1", "fecha": "15/06/2025", "codigo": "M"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "fecha inválida")
	mockProvider.AssertNotCalled(t, "ReplacePlanning")
}

func TestSavePlanificacion_RutNotInMalla(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)
	handler := SavePlanificacion(slog.Default(), mockProvider)

	reqBody := `{
		"year": 2025,
		"month": 6,
		"sucursal": "Centro",
		"ruts": ["11111111-1"],
		"data": [{"rut": "22222222-2", "fecha": "2025-06-15", "codigo": "M"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "no está en la malla")
	mockProvider.AssertNotCalled(t, "ReplacePlanning")
}

func TestSavePlanificacion_MonthOutOfRange(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)
	handler := SavePlanificacion(slog.Default(), mockProvider)

	reqBody := `{"year": 2025, "month": 13, "sucursal": "Centro", "ruts": ["1-9"], "data": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockProvider.AssertNotCalled(t, "ReplacePlanning")
}

func TestSavePlanificacion_StorageError(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)
	mockProvider.On("ReplacePlanning", mock.Anything, mock.Anything).
		Return(int64(0), int64(0), errors.New("deadlock found when trying to get lock"))

	handler := SavePlanificacion(slog.Default(), mockProvider)

	reqBody := `{"year": 2025, "month": 6, "sucursal": "Centro", "ruts": ["1-9"], "data": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockProvider.AssertExpectations(t)
}

// Guardar una malla sin turnos asignados pero con ruts es válido: limpia la
// ventana del mes para esos trabajadores.
func TestSavePlanificacion_EmptyDataClearsWindow(t *testing.T) {
	mockProvider := new(MockPlanningSaveProvider)
	mockProvider.On("ReplacePlanning", mock.Anything, mock.MatchedBy(func(req storage.SavePlanning) bool {
		return len(req.Ruts) == 1 && len(req.Data) == 0
	})).Return(int64(5), int64(0), nil)

	handler := SavePlanificacion(slog.Default(), mockProvider)

	reqBody := `{"year": 2025, "month": 6, "sucursal": "Centro", "ruts": ["1-9"], "data": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/guardar", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.EqualValues(t, 5, resp["eliminados"])
	assert.EqualValues(t, 0, resp["insertados"])
}
