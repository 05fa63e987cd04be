package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"turnos-backend/internal/storage"
)

type PlanningProvider interface {
	GetPlanning(ctx context.Context, year, month int, sucursal string) ([]storage.PlanningRecord, error)
}

// GetPlanificacion devuelve la planificación guardada de una sucursal para un
// mes. Sin year/month en la query se asume el mes en curso.
func GetPlanificacion(log *slog.Logger, plan PlanningProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.planificacion.GetPlanificacion"

		sucursal := r.URL.Query().Get("sucursal")
		if sucursal == "" {
			http.Error(w, "falta el parámetro sucursal", http.StatusBadRequest)
			return
		}

		now := time.Now()
		year, month := now.Year(), int(now.Month())

		if s := r.URL.Query().Get("year"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				http.Error(w, "year inválido", http.StatusBadRequest)
				return
			}
			year = v
		}
		if s := r.URL.Query().Get("month"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil || v < 1 || v > 12 {
				http.Error(w, "month inválido", http.StatusBadRequest)
				return
			}
			month = v
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := plan.GetPlanning(ctx, year, month, sucursal)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("error al obtener la planificación")
			http.Error(w, "error al obtener la planificación", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, records)
	}
}
