package planning

import (
	"sort"
	"time"
)

const (
	// Umbral de desviación contra las horas de contrato: sobre o bajo el 10%
	// de lo esperado dispara alerta.
	deviationThreshold = 0.10

	// Horas semanales de contrato cuando el roster no trae el dato.
	defaultWeeklyHours = 42
)

// WorkerHours es el análisis de horas de un trabajador dentro de la malla.
type WorkerHours struct {
	Rut           string          `json:"rut"`
	Nombre        string          `json:"trabajador"`
	PlannedHours  float64         `json:"horas_planificadas"`
	ExpectedHours float64         `json:"horas_esperadas_mes"`
	Difference    float64         `json:"diferencia_horas"`
	WeeklyHours   map[int]float64 `json:"horas_por_semana"`
}

// Statistics es el resumen ejecutivo de una malla. Es función pura de la
// malla, el catálogo y las horas de contrato; se recalcula en cada edición.
type Statistics struct {
	TotalWorkers      int     `json:"total_trabajadores"`
	WorkersWithShifts int     `json:"trabajadores_con_turnos"`
	TotalShifts       int     `json:"total_turnos_asignados"`
	TotalHours        float64 `json:"total_horas_planificadas"`
	AverageHours      float64 `json:"promedio_horas_por_trabajador"`
	Coverage          float64 `json:"cobertura_porcentaje"`
	WeekendShifts     int     `json:"turnos_fin_semana"`
	WeekendHours      float64 `json:"horas_fin_semana"`

	HoursByWeekday map[string]float64 `json:"horas_por_dia_semana"`
	ShiftCounts    map[string]int     `json:"turnos_por_codigo"`

	PerWorker    []WorkerHours `json:"analisis_horas_trabajador"`
	OverPlanned  []WorkerHours `json:"trabajadores_sobreplanificados"`
	UnderPlanned []WorkerHours `json:"trabajadores_subplanificados"`
	Unplanned    []WorkerHours `json:"trabajadores_sin_turnos"`

	// Códigos presentes en la malla pero ausentes del catálogo. Resuelven a
	// 0 minutos; se reportan, no se rechazan.
	UnknownCodes []string `json:"codigos_desconocidos"`
}

// Aggregate calcula las estadísticas de la malla. Las horas esperadas del mes
// son proporcionales: contrato semanal × (días del mes / 7), no un calendario
// exacto de semanas.
func Aggregate(g *Grid) Statistics {
	stats := Statistics{
		TotalWorkers:   len(g.Workers),
		HoursByWeekday: make(map[string]float64),
		ShiftCounts:    make(map[string]int),
	}

	monthFactor := float64(len(g.Dates)) / 7.0
	coveredDays := make(map[int]bool)
	unknown := make(map[string]bool)

	for _, w := range g.Workers {
		row := g.Cells[w.Rut]

		wh := WorkerHours{
			Rut:         w.Rut,
			Nombre:      w.Nombre,
			WeeklyHours: make(map[int]float64),
		}

		var plannedMinutes float64
		for i, codigo := range row {
			if codigo == "" {
				continue
			}
			date := g.Dates[i]
			coveredDays[i] = true
			stats.TotalShifts++
			stats.ShiftCounts[codigo]++

			code, ok := g.Catalog[codigo]
			if !ok {
				unknown[codigo] = true
			}
			minutes := code.WorkingMinutes // cero si el código es desconocido

			plannedMinutes += minutes
			stats.HoursByWeekday[DiaSemana(date)] += minutes / 60

			_, week := date.ISOWeek()
			wh.WeeklyHours[week] += minutes / 60

			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				stats.WeekendShifts++
				stats.WeekendHours += minutes / 60
			}
		}

		contract := w.HorasSemana
		if contract <= 0 {
			contract = defaultWeeklyHours
		}

		wh.PlannedHours = plannedMinutes / 60
		wh.ExpectedHours = contract * monthFactor
		wh.Difference = wh.PlannedHours - wh.ExpectedHours
		stats.PerWorker = append(stats.PerWorker, wh)
		stats.TotalHours += wh.PlannedHours

		threshold := wh.ExpectedHours * deviationThreshold
		switch {
		case plannedMinutes == 0:
			stats.Unplanned = append(stats.Unplanned, wh)
		case wh.Difference > threshold:
			stats.OverPlanned = append(stats.OverPlanned, wh)
		case wh.Difference < -threshold:
			stats.UnderPlanned = append(stats.UnderPlanned, wh)
		}

		if plannedMinutes > 0 {
			stats.WorkersWithShifts++
		}
	}

	if stats.WorkersWithShifts > 0 {
		stats.AverageHours = stats.TotalHours / float64(stats.WorkersWithShifts)
	}
	if len(g.Dates) > 0 {
		stats.Coverage = float64(len(coveredDays)) / float64(len(g.Dates)) * 100
	}

	for codigo := range unknown {
		stats.UnknownCodes = append(stats.UnknownCodes, codigo)
	}
	sort.Strings(stats.UnknownCodes)

	return stats
}
