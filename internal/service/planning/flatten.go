package planning

import (
	"time"

	"turnos-backend/internal/storage"
)

// Flatten convierte la malla en registros persistibles, descartando las
// celdas vacías. El orden sigue el de la malla: trabajador, luego fecha.
func (g *Grid) Flatten() []storage.PlanningRecord {
	var records []storage.PlanningRecord
	for _, w := range g.Workers {
		row := g.Cells[w.Rut]
		for i, codigo := range row {
			if codigo == "" {
				continue
			}
			records = append(records, storage.PlanningRecord{
				Rut:      w.Rut,
				Sucursal: g.Scope.Sucursal,
				Fecha:    g.Dates[i].Format(storage.DateLayout),
				Codigo:   codigo,
			})
		}
	}
	return records
}

// ApplyRecords vuelca registros sobre la malla. Es tolerante: ruts fuera del
// roster o fechas fuera del mes se ignoran, y los códigos se colocan aunque ya
// no estén en el catálogo (el agregador los reporta como dato dudoso).
func (g *Grid) ApplyRecords(records []storage.PlanningRecord) {
	dayIndex := make(map[string]int, len(g.Dates))
	for i, d := range g.Dates {
		dayIndex[d.Format(storage.DateLayout)] = i
	}

	for _, rec := range records {
		row, ok := g.Cells[rec.Rut]
		if !ok {
			continue
		}
		if _, err := time.Parse(storage.DateLayout, rec.Fecha); err != nil {
			continue
		}
		i, ok := dayIndex[rec.Fecha]
		if !ok {
			continue
		}
		row[i] = rec.Codigo
	}
}

// Inflate reconstruye una malla desde registros guardados, para el mismo
// roster y mes con que se aplanó.
func Inflate(scope Scope, workers []storage.Worker, catalog map[string]storage.ShiftCode, records []storage.PlanningRecord) *Grid {
	g := NewGrid(scope, workers, catalog)
	g.ApplyRecords(records)
	return g
}
