package excel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"turnos-backend/internal/service/planning"
)

type BranchSheetGenerator interface {
	BranchSheet(ctx context.Context, scope planning.Scope) ([]byte, string, error)
}

// GenerateExcel descarga la planilla Excel de la planificación guardada de
// una sucursal. El alcance va por query params; year y month por defecto son
// el mes en curso.
func GenerateExcel(log *slog.Logger, gen BranchSheetGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateExcel"

		scope, err := scopeFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		data, fileName, err := gen.BranchSheet(ctx, scope)
		if err != nil {
			log.Error("error al generar la planilla", "op", op, "err", err)
			http.Error(w, "error al generar la planilla", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
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
