package planning

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"turnos-backend/internal/storage"
)

// ErrEmptyCatalog se devuelve cuando no hay códigos de turno válidos: sin
// catálogo no se puede editar una malla.
var ErrEmptyCatalog = errors.New("catálogo de turnos vacío")

// Scope identifica una malla: un mes de una sucursal bajo un supervisor. Se
// pasa explícito a cada operación, nunca como estado ambiente.
type Scope struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Sucursal   string `json:"sucursal"`
	Supervisor string `json:"supervisor"`
}

// Grid es la malla editable de un mes: una fila por trabajador, una columna
// por día calendario. Cells va indexado por rut y por índice de día; celda
// vacía = sin turno.
type Grid struct {
	Scope   Scope
	Workers []storage.Worker
	Dates   []time.Time
	Catalog map[string]storage.ShiftCode
	Cells   map[string][]string
}

type GridStorage interface {
	GetShiftCodes(ctx context.Context) ([]storage.ShiftCode, error)
	GetWorkers(ctx context.Context, supervisor, sucursal string) ([]storage.Worker, error)
}

type Service struct {
	storage GridStorage
}

func NewService(storage GridStorage) *Service {
	return &Service{storage: storage}
}

// MonthDates devuelve todos los días calendario del mes, en orden.
func MonthDates(year, month int) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	numDays := first.AddDate(0, 1, -1).Day()

	dates := make([]time.Time, 0, numDays)
	for day := 0; day < numDays; day++ {
		dates = append(dates, first.AddDate(0, 0, day))
	}
	return dates
}

var diasSemana = [7]string{"Domingo", "Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado"}

func DiaSemana(t time.Time) string {
	return diasSemana[int(t.Weekday())]
}

// BuildGrid arma la malla vacía del mes: catálogo y roster se traen en
// paralelo. Un roster vacío produce una malla sin filas, no un error; un
// catálogo vacío sí es error porque bloquea la edición.
func (s *Service) BuildGrid(ctx context.Context, scope Scope) (*Grid, error) {
	const op = "service.planning.BuildGrid"

	if scope.Month < 1 || scope.Month > 12 {
		return nil, fmt.Errorf("%s: mes inválido: %d", op, scope.Month)
	}

	var (
		codes   []storage.ShiftCode
		workers []storage.Worker
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		codes, err = s.storage.GetShiftCodes(gCtx)
		if err != nil {
			return fmt.Errorf("turnos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		workers, err = s.storage.GetWorkers(gCtx, scope.Supervisor, scope.Sucursal)
		if err != nil {
			return fmt.Errorf("trabajadores: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(codes) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyCatalog)
	}

	catalog := make(map[string]storage.ShiftCode, len(codes))
	for _, c := range codes {
		catalog[c.Codigo] = c
	}

	return NewGrid(scope, workers, catalog), nil
}

// NewGrid construye una malla vacía. Deduplica el roster por rut y lo ordena
// por nombre.
func NewGrid(scope Scope, workers []storage.Worker, catalog map[string]storage.ShiftCode) *Grid {
	seen := make(map[string]bool, len(workers))
	unique := make([]storage.Worker, 0, len(workers))
	for _, w := range workers {
		if seen[w.Rut] {
			continue
		}
		seen[w.Rut] = true
		unique = append(unique, w)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Nombre < unique[j].Nombre })

	dates := MonthDates(scope.Year, scope.Month)
	cells := make(map[string][]string, len(unique))
	for _, w := range unique {
		cells[w.Rut] = make([]string, len(dates))
	}

	return &Grid{
		Scope:   scope,
		Workers: unique,
		Dates:   dates,
		Catalog: catalog,
		Cells:   cells,
	}
}

// SetCell asigna un turno a una celda. El código debe existir en el catálogo
// vigente al momento de armar la malla; vacío borra la celda.
func (g *Grid) SetCell(rut string, day int, codigo string) error {
	const op = "service.planning.SetCell"

	row, ok := g.Cells[rut]
	if !ok {
		return fmt.Errorf("%s: rut %s no pertenece a la malla", op, rut)
	}
	if day < 0 || day >= len(g.Dates) {
		return fmt.Errorf("%s: día %d fuera del mes", op, day)
	}
	if codigo != "" {
		if _, ok := g.Catalog[codigo]; !ok {
			return fmt.Errorf("%s: código de turno desconocido: %s", op, codigo)
		}
	}

	row[day] = codigo
	return nil
}

// DayLabels devuelve las etiquetas de columna: día de la semana, número y
// fecha corta. Los domingos quedan marcados para cobertura y alertas.
func (g *Grid) DayLabels() []string {
	labels := make([]string, 0, len(g.Dates))
	for _, d := range g.Dates {
		label := fmt.Sprintf("%s %02d %s", DiaSemana(d), d.Day(), d.Format("02-01-2006"))
		if d.Weekday() == time.Sunday {
			label = "* " + label
		}
		labels = append(labels, label)
	}
	return labels
}
