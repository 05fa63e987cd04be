// Package projection proyecta la venta diaria por sucursal con un modelo
// base: mínimos cuadrados sobre características de calendario (tendencia,
// mes, día de la semana, día del año, semana ISO). No es un modelo de series
// de tiempo con descomposición estacional ni intervalos de confianza; es una
// línea base ingenua y así debe leerse.
package projection

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"
	"turnos-backend/internal/storage"
)

// MinHistoryPoints es el mínimo de puntos históricos por sucursal para
// ajustar un modelo con algo de sentido.
const MinHistoryPoints = 30

const numFeatures = 6

type SalesStorage interface {
	GetDailySales(ctx context.Context) ([]storage.SalesPoint, error)
}

type Service struct {
	log     *slog.Logger
	storage SalesStorage
}

func NewService(log *slog.Logger, storage SalesStorage) *Service {
	return &Service{log: log, storage: storage}
}

// Project trae el histórico y proyecta horizonDays días por sucursal,
// partiendo del día siguiente al último dato. Sin sucursales explícitas se
// proyectan todas las presentes en el histórico.
func (s *Service) Project(ctx context.Context, branches []string, horizonDays int) ([]storage.ProjectionPoint, error) {
	const op = "service.projection.Project"

	history, err := s.storage.GetDailySales(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(history) == 0 {
		return nil, nil
	}

	if len(branches) == 0 {
		seen := make(map[string]bool)
		for _, p := range history {
			if !seen[p.Sucursal] {
				seen[p.Sucursal] = true
				branches = append(branches, p.Sucursal)
			}
		}
		sort.Strings(branches)
	}

	return ProjectSeries(s.log, history, branches, horizonDays), nil
}

// ProjectSeries es la parte pura: ajusta un modelo por sucursal y extrapola.
// Sucursales con menos de MinHistoryPoints puntos se omiten con advertencia.
// Las predicciones negativas se recortan a cero: no existen ventas negativas.
func ProjectSeries(log *slog.Logger, history []storage.SalesPoint, branches []string, horizonDays int) []storage.ProjectionPoint {
	if len(history) == 0 || horizonDays <= 0 {
		return nil
	}

	origin := history[0].Fecha
	lastDate := history[0].Fecha
	byBranch := make(map[string][]storage.SalesPoint)
	for _, p := range history {
		if p.Fecha.Before(origin) {
			origin = p.Fecha
		}
		if p.Fecha.After(lastDate) {
			lastDate = p.Fecha
		}
		byBranch[p.Sucursal] = append(byBranch[p.Sucursal], p)
	}

	var projection []storage.ProjectionPoint
	for _, branch := range branches {
		points := byBranch[branch]
		if len(points) < MinHistoryPoints {
			log.Warn("datos insuficientes para proyectar, sucursal omitida",
				slog.String("sucursal", branch), slog.Int("puntos", len(points)))
			continue
		}

		m, err := fit(points, origin)
		if err != nil {
			log.Error("no se pudo ajustar el modelo de proyección",
				slog.String("sucursal", branch), slog.String("error", err.Error()))
			continue
		}

		for d := 1; d <= horizonDays; d++ {
			date := lastDate.AddDate(0, 0, d)
			predicted := m.predict(date)
			if predicted < 0 {
				predicted = 0
			}
			projection = append(projection, storage.ProjectionPoint{
				Fecha:      date,
				Sucursal:   branch,
				Proyeccion: predicted,
			})
		}
	}

	return projection
}

// features deriva el vector de características de calendario de una fecha.
// tiempo es el desplazamiento continuo en días desde el inicio de la serie,
// para capturar la tendencia.
func features(date, origin time.Time) []float64 {
	tiempo := date.Sub(origin).Hours() / 24
	_, semanaISO := date.ISOWeek()
	return []float64{
		1, // intercepto
		tiempo,
		// El mes calendario (1-12) es la señal estacional del modelo, no el
		// día del mes; no cambiar a Day().
		float64(date.Month()),
		float64(date.Weekday()),
		float64(date.YearDay()),
		float64(semanaISO),
	}
}

type model struct {
	origin time.Time
	beta   *mat.VecDense
}

// fit resuelve las ecuaciones normales con una regularización mínima en la
// diagonal: dentro de un mismo año el día del año y el desplazamiento son
// colineales y XᵀX queda singular sin ella.
func fit(points []storage.SalesPoint, origin time.Time) (*model, error) {
	n := len(points)
	x := mat.NewDense(n, numFeatures, nil)
	y := mat.NewVecDense(n, nil)
	for i, p := range points {
		x.SetRow(i, features(p.Fecha, origin))
		y.SetVec(i, p.TotalVenta)
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var trace float64
	for i := 0; i < numFeatures; i++ {
		trace += xtx.At(i, i)
	}
	lambda := 1e-6 * trace / numFeatures
	for i := 0; i < numFeatures; i++ {
		xtx.Set(i, i, xtx.At(i, i)+lambda)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var beta mat.VecDense
	if err := beta.SolveVec(&xtx, &xty); err != nil {
		return nil, fmt.Errorf("resolver mínimos cuadrados: %w", err)
	}

	return &model{origin: origin, beta: &beta}, nil
}

func (m *model) predict(date time.Time) float64 {
	f := features(date, m.origin)
	var sum float64
	for i, v := range f {
		sum += v * m.beta.AtVec(i)
	}
	return sum
}
