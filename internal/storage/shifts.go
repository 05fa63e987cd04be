package storage

import "fmt"

// ShiftCode es una entrada del catálogo de turnos. La duración viene en
// segundos desde la BD (columna working) y se expone en minutos.
type ShiftCode struct {
	Codigo         string  `json:"codigo"`
	WorkingMinutes float64 `json:"working_minutes"`
	Desde          string  `json:"desde"`
	Hasta          string  `json:"hasta"`
}

// Rango devuelve el horario "desde - hasta" que se muestra en planillas y PDF.
func (s ShiftCode) Rango() string {
	if s.Desde == "" && s.Hasta == "" {
		return "-"
	}
	return fmt.Sprintf("%s - %s", s.Desde, s.Hasta)
}
