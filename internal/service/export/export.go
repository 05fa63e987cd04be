// Package export genera los documentos de una planificación guardada: la
// planilla de la sucursal en Excel y un PDF de turnos por trabajador,
// empaquetados en un zip. La generación es una acción terminal y opcional:
// sus fallas no tocan la edición ni el guardado de la malla.
package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"
	"turnos-backend/internal/service/planning"
	"turnos-backend/internal/storage"
)

// DocumentSink es el adaptador de salida: separa el armado de los datos del
// documento de la biblioteca concreta que lo dibuja.
type DocumentSink interface {
	WorkerSchedule(doc WorkerScheduleDoc) ([]byte, error)
	BranchSheet(doc BranchSheetDoc) ([]byte, error)
}

type ScheduleRow struct {
	Dia     string
	Fecha   string
	Codigo  string
	Jornada string
	Horario string
}

type WorkerScheduleDoc struct {
	Nombre   string
	Rut      string
	Sucursal string
	Periodo  string

	Rows []ScheduleRow

	// Resumen de horas por semana ISO más el total del mes, ya formateado.
	WeeklyHeaders []string
	WeeklyValues  []string
}

type BranchSheetRow struct {
	Rut    string
	Nombre string
	Fecha  string
	Codigo string
}

type BranchSheetDoc struct {
	Sucursal string
	Periodo  string
	Rows     []BranchSheetRow
}

type ExportStorage interface {
	GetPlanning(ctx context.Context, year, month int, sucursal string) ([]storage.PlanningRecord, error)
	GetWorkers(ctx context.Context, supervisor, sucursal string) ([]storage.Worker, error)
	GetShiftCodes(ctx context.Context) ([]storage.ShiftCode, error)
}

type Service struct {
	log     *slog.Logger
	storage ExportStorage
	sink    DocumentSink
}

func NewService(log *slog.Logger, storage ExportStorage, sink DocumentSink) *Service {
	return &Service{log: log, storage: storage, sink: sink}
}

// planData trae en paralelo lo que ambos exportes necesitan y deja la malla
// reconstruida.
func (s *Service) planData(ctx context.Context, scope planning.Scope) (*planning.Grid, error) {
	var (
		records []storage.PlanningRecord
		workers []storage.Worker
		codes   []storage.ShiftCode
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.storage.GetPlanning(gCtx, scope.Year, scope.Month, scope.Sucursal)
		if err != nil {
			return fmt.Errorf("planificación: %w", err)
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
	g.Go(func() error {
		var err error
		codes, err = s.storage.GetShiftCodes(gCtx)
		if err != nil {
			return fmt.Errorf("turnos: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := make(map[string]storage.ShiftCode, len(codes))
	for _, c := range codes {
		catalog[c.Codigo] = c
	}

	return planning.Inflate(scope, workers, catalog, records), nil
}

// BranchSheet genera la planilla Excel de la sucursal: una fila por
// (trabajador × fecha con turno). Devuelve los bytes y el nombre de archivo.
func (s *Service) BranchSheet(ctx context.Context, scope planning.Scope) ([]byte, string, error) {
	const op = "service.export.BranchSheet"

	grid, err := s.planData(ctx, scope)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	doc := BranchSheetDoc{
		Sucursal: scope.Sucursal,
		Periodo:  fmt.Sprintf("%02d-%d", scope.Month, scope.Year),
	}
	for _, w := range grid.Workers {
		for i, codigo := range grid.Cells[w.Rut] {
			if codigo == "" {
				continue
			}
			doc.Rows = append(doc.Rows, BranchSheetRow{
				Rut:    formatRut(w.Rut),
				Nombre: w.Nombre,
				Fecha:  grid.Dates[i].Format("02-01-2006"),
				Codigo: codigo,
			})
		}
	}

	data, err := s.sink.BranchSheet(doc)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	name := fmt.Sprintf("planificacion_%s_%s_%d.xlsx", scope.Sucursal, monthName(scope.Month), scope.Year)
	return data, name, nil
}

// WorkerArchive genera un PDF por trabajador con turnos y los empaqueta en un
// zip. La falla de un PDF no bota el resto: se registra y se sigue con los
// demás trabajadores.
func (s *Service) WorkerArchive(ctx context.Context, scope planning.Scope) ([]byte, string, error) {
	const op = "service.export.WorkerArchive"

	grid, err := s.planData(ctx, scope)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	var bundled int

	for _, w := range grid.Workers {
		doc := s.workerDoc(grid, w)
		if len(doc.Rows) == 0 {
			continue
		}

		pdfBytes, err := s.sink.WorkerSchedule(doc)
		if err != nil {
			s.log.Error("no se pudo generar el PDF del trabajador, se omite",
				slog.String("op", op), slog.String("rut", w.Rut), slog.String("error", err.Error()))
			continue
		}

		fileName := fmt.Sprintf("Planificacion_%s_%s_%d.pdf",
			sanitizeFileName(w.Nombre), monthName(scope.Month), scope.Year)
		f, err := zw.Create(fileName)
		if err != nil {
			return nil, "", fmt.Errorf("%s: zip: %w", op, err)
		}
		if _, err := f.Write(pdfBytes); err != nil {
			return nil, "", fmt.Errorf("%s: zip write: %w", op, err)
		}
		bundled++
	}

	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("%s: zip close: %w", op, err)
	}
	if bundled == 0 {
		return nil, "", fmt.Errorf("%s: no hay turnos asignados para exportar", op)
	}

	name := fmt.Sprintf("PDFs_Planificacion_%s_%s_%d.zip", scope.Sucursal, monthName(scope.Month), scope.Year)
	return buf.Bytes(), name, nil
}

// workerDoc arma el documento de un trabajador: tabla cronológica de turnos y
// resumen de horas por semana ISO.
func (s *Service) workerDoc(grid *planning.Grid, w storage.Worker) WorkerScheduleDoc {
	doc := WorkerScheduleDoc{
		Nombre:   w.Nombre,
		Rut:      formatRut(w.Rut),
		Sucursal: grid.Scope.Sucursal,
		Periodo:  fmt.Sprintf("%s %d", monthName(grid.Scope.Month), grid.Scope.Year),
	}

	weekly := make(map[int]float64)
	var totalMinutes float64

	for i, codigo := range grid.Cells[w.Rut] {
		if codigo == "" {
			continue
		}
		date := grid.Dates[i]
		code := grid.Catalog[codigo] // cero minutos si es desconocido

		doc.Rows = append(doc.Rows, ScheduleRow{
			Dia:     planning.DiaSemana(date),
			Fecha:   date.Format("02-01-2006"),
			Codigo:  codigo,
			Jornada: minutesToTime(code.WorkingMinutes),
			Horario: code.Rango(),
		})

		_, week := date.ISOWeek()
		weekly[week] += code.WorkingMinutes
		totalMinutes += code.WorkingMinutes
	}

	weeks := make([]int, 0, len(weekly))
	for week := range weekly {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	for _, week := range weeks {
		doc.WeeklyHeaders = append(doc.WeeklyHeaders, fmt.Sprintf("Semana %d", week))
		doc.WeeklyValues = append(doc.WeeklyValues, minutesToTime(weekly[week]))
	}
	doc.WeeklyHeaders = append(doc.WeeklyHeaders, "Total Mes")
	doc.WeeklyValues = append(doc.WeeklyValues, minutesToTime(totalMinutes))

	return doc
}

func sanitizeFileName(name string) string {
	out := []rune(name)
	for i, r := range out {
		if r == ' ' || r == '/' || r == '\\' {
			out[i] = '_'
		}
	}
	return string(out)
}
