package stats

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"turnos-backend/internal/service/planning"
	"turnos-backend/internal/storage"
)

type MockGridBuilder struct {
	mock.Mock
}

func (m *MockGridBuilder) BuildGrid(ctx context.Context, scope planning.Scope) (*planning.Grid, error) {
	args := m.Called(ctx, scope)
	if v := args.Get(0); v != nil {
		return v.(*planning.Grid), args.Error(1)
	}
	return nil, args.Error(1)
}

func testGrid(scope planning.Scope) *planning.Grid {
	workers := []storage.Worker{
		{Rut: "11111111-1", Nombre: "Carla Rojas", HorasSemana: 40},
	}
	catalog := map[string]storage.ShiftCode{
		"M": {Codigo: "M", WorkingMinutes: 480},
	}
	return planning.NewGrid(scope, workers, catalog)
}

func TestGetEstadisticas_Success(t *testing.T) {
	scope := planning.Scope{Year: 2025, Month: 6, Sucursal: "Centro", Supervisor: "P.SOTO"}

	mockBuilder := new(MockGridBuilder)
	mockBuilder.On("BuildGrid", mock.Anything, scope).Return(testGrid(scope), nil)

	handler := GetEstadisticas(slog.Default(), mockBuilder)

	reqBody := `{
		"year": 2025,
		"month": 6,
		"sucursal": "Centro",
		"supervisor": "P.SOTO",
		"data": [
			{"rut": "11111111-1", "fecha": "2025-06-02", "codigo": "M"},
			{"rut": "11111111-1", "fecha": "2025-06-03", "codigo": "M"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/estadisticas", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, resp["total_trabajadores"])
	assert.EqualValues(t, 2, resp["total_turnos_asignados"])
	assert.EqualValues(t, 16, resp["total_horas_planificadas"])

	mockBuilder.AssertExpectations(t)
}

func TestGetEstadisticas_InvalidJSON(t *testing.T) {
	mockBuilder := new(MockGridBuilder)
	handler := GetEstadisticas(slog.Default(), mockBuilder)

	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/estadisticas", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockBuilder.AssertNotCalled(t, "BuildGrid")
}

func TestGetEstadisticas_MonthOutOfRange(t *testing.T) {
	mockBuilder := new(MockGridBuilder)
	handler := GetEstadisticas(slog.Default(), mockBuilder)

	reqBody := `{"year": 2025, "month": 0, "sucursal": "Centro", "data": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/estadisticas", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockBuilder.AssertNotCalled(t, "BuildGrid")
}

func TestGetEstadisticas_EmptyCatalog(t *testing.T) {
	mockBuilder := new(MockGridBuilder)
	mockBuilder.On("BuildGrid", mock.Anything, mock.Anything).
		Return(nil, planning.ErrEmptyCatalog)

	handler := GetEstadisticas(slog.Default(), mockBuilder)

	reqBody := `{"year": 2025, "month": 6, "sucursal": "Centro", "data": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/planificacion/estadisticas", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}
