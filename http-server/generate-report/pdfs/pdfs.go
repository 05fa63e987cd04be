package pdfs

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"turnos-backend/internal/service/planning"
)

type WorkerArchiveGenerator interface {
	WorkerArchive(ctx context.Context, scope planning.Scope) ([]byte, string, error)
}

// GeneratePDFs descarga un zip con un PDF de turnos por cada trabajador de la
// sucursal que tenga al menos un turno asignado en el mes.
func GeneratePDFs(log *slog.Logger, gen WorkerArchiveGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GeneratePDFs"

		scope, err := scopeFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// La generación de un PDF por trabajador puede tomar su tiempo.
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		data, fileName, err := gen.WorkerArchive(ctx, scope)
		if err != nil {
			log.Error("error al generar los PDF", "op", op, "err", err)
			http.Error(w, "error al generar los PDF", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(data)
	}
}

func scopeFromQuery(r *http.Request) (planning.Scope, error) {
	now := time.Now()
	scope := planning.Scope{
		Year:       now.Year(),
		Month:      int(now.Month()),
		Sucursal:   r.URL.Query().Get("sucursal"),
		Supervisor: r.URL.Query().Get("supervisor"),
	}

	if scope.Sucursal == "" {
		return scope, errors.New("falta el parámetro sucursal")
	}
	if s := r.URL.Query().Get("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return scope, errors.New("year inválido")
		}
		scope.Year = v
	}
	if s := r.URL.Query().Get("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			return scope, errors.New("month inválido")
		}
		scope.Month = v
	}
	return scope, nil
}
