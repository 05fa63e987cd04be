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

type AbsenceProvider interface {
	GetAbsences(ctx context.Context, year, month int) ([]storage.Absence, error)
}

// GetInasistencias devuelve las inasistencias registradas en un mes. Sin
// year/month en la query se asume el mes en curso.
func GetInasistencias(log *slog.Logger, absences AbsenceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.inasistencias.GetInasistencias"

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

		list, err := absences.GetAbsences(ctx, year, month)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("error al obtener las inasistencias")
			http.Error(w, "error al obtener inasistencias", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, list)
	}
}
