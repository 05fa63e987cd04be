package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turnos-backend/internal/storage"
)

func statsGrid(t *testing.T) *Grid {
	t.Helper()
	scope := Scope{Year: 2025, Month: 6, Sucursal: "Centro", Supervisor: "X"} // 30 días
	workers := []storage.Worker{
		{Rut: "1-9", Nombre: "Arancibia Ana", HorasSemana: 40},
		{Rut: "2-7", Nombre: "Zúñiga Pedro", HorasSemana: 45},
	}
	return NewGrid(scope, workers, testCatalog())
}

func TestAggregate_EmptyGrid(t *testing.T) {
	grid := statsGrid(t)
	stats := Aggregate(grid)

	assert.Equal(t, 2, stats.TotalWorkers)
	assert.Equal(t, 0, stats.WorkersWithShifts)
	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.Coverage)
	assert.Len(t, stats.Unplanned, 2)
	assert.Empty(t, stats.OverPlanned)
	assert.Empty(t, stats.UnderPlanned)
}

func TestAggregate_UnplannedIsNotUnderPlanned(t *testing.T) {
	// Contrato de 40h y cero turnos en 30 días: va a "sin turnos", no a
	// "subplanificados", aunque el déficit supere con creces el umbral.
	grid := statsGrid(t)
	assert.NoError(t, grid.SetCell("2-7", 0, "M"))

	stats := Aggregate(grid)

	var unplannedRuts []string
	for _, wh := range stats.Unplanned {
		unplannedRuts = append(unplannedRuts, wh.Rut)
	}
	assert.Contains(t, unplannedRuts, "1-9")

	for _, wh := range stats.UnderPlanned {
		assert.NotEqual(t, "1-9", wh.Rut)
	}
}

func TestAggregate_OverAndUnderThresholds(t *testing.T) {
	grid := statsGrid(t)

	// Ana: 30 días × 8h = 240h planificadas vs 40 × 30/7 ≈ 171.4h esperadas.
	for i := range grid.Dates {
		assert.NoError(t, grid.SetCell("1-9", i, "M"))
	}
	// Pedro: un solo turno de 8h vs 45 × 30/7 ≈ 192.9h esperadas.
	assert.NoError(t, grid.SetCell("2-7", 3, "M"))

	stats := Aggregate(grid)

	assert.Len(t, stats.OverPlanned, 1)
	assert.Equal(t, "1-9", stats.OverPlanned[0].Rut)
	assert.InDelta(t, 240, stats.OverPlanned[0].PlannedHours, 0.01)
	assert.InDelta(t, 40*30.0/7.0, stats.OverPlanned[0].ExpectedHours, 0.01)

	assert.Len(t, stats.UnderPlanned, 1)
	assert.Equal(t, "2-7", stats.UnderPlanned[0].Rut)
	assert.Empty(t, stats.Unplanned)
}

func TestAggregate_Idempotent(t *testing.T) {
	grid := statsGrid(t)
	assert.NoError(t, grid.SetCell("1-9", 0, "M"))
	assert.NoError(t, grid.SetCell("2-7", 5, "N"))

	first := Aggregate(grid)
	second := Aggregate(grid)

	assert.Equal(t, first, second)
}

func TestAggregate_CoverageBounds(t *testing.T) {
	grid := statsGrid(t)

	stats := Aggregate(grid)
	assert.Zero(t, stats.Coverage)

	// Cobertura 100 solo cuando todos los días tienen al menos un turno.
	for i := range grid.Dates {
		if i%2 == 0 {
			assert.NoError(t, grid.SetCell("1-9", i, "M"))
		} else {
			assert.NoError(t, grid.SetCell("2-7", i, "T"))
		}
	}
	stats = Aggregate(grid)
	assert.InDelta(t, 100, stats.Coverage, 0.001)

	assert.NoError(t, grid.SetCell("1-9", 0, ""))
	stats = Aggregate(grid)
	assert.Less(t, stats.Coverage, 100.0)
	assert.GreaterOrEqual(t, stats.Coverage, 0.0)
}

func TestAggregate_UnknownCodeResolvesToZeroMinutes(t *testing.T) {
	grid := statsGrid(t)
	grid.ApplyRecords([]storage.PlanningRecord{
		{Rut: "1-9", Fecha: "2025-06-10", Codigo: "FUERA-DE-CATALOGO"},
	})

	stats := Aggregate(grid)

	assert.Equal(t, []string{"FUERA-DE-CATALOGO"}, stats.UnknownCodes)
	assert.Zero(t, stats.TotalHours)
	// El turno cuenta como asignado y cubre el día aunque dure 0 minutos.
	assert.Equal(t, 1, stats.TotalShifts)
	assert.InDelta(t, 100.0/30.0, stats.Coverage, 0.01)
}

func TestAggregate_WeekendTotals(t *testing.T) {
	grid := statsGrid(t)

	// Junio 2025: el día 1 es domingo y el 7 es sábado.
	assert.NoError(t, grid.SetCell("1-9", 0, "M")) // domingo, 8h
	assert.NoError(t, grid.SetCell("1-9", 6, "M")) // sábado, 8h
	assert.NoError(t, grid.SetCell("1-9", 2, "M")) // martes

	stats := Aggregate(grid)

	assert.Equal(t, 2, stats.WeekendShifts)
	assert.InDelta(t, 16, stats.WeekendHours, 0.001)
	assert.InDelta(t, 8, stats.HoursByWeekday["Domingo"], 0.001)
	assert.InDelta(t, 8, stats.HoursByWeekday["Sabado"], 0.001)
}

func TestAggregate_DefaultContractHours(t *testing.T) {
	scope := Scope{Year: 2025, Month: 6, Sucursal: "Centro"}
	workers := []storage.Worker{{Rut: "3-5", Nombre: "Sin Contrato"}}
	grid := NewGrid(scope, workers, testCatalog())

	stats := Aggregate(grid)
	assert.InDelta(t, 42*30.0/7.0, stats.PerWorker[0].ExpectedHours, 0.01)
}
