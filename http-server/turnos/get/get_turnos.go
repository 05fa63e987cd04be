package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"turnos-backend/internal/storage"
)

type ShiftProvider interface {
	GetShiftCodes(ctx context.Context) ([]storage.ShiftCode, error)
}

// GetTurnos devuelve el catálogo completo de códigos de turno.
func GetTurnos(log *slog.Logger, shifts ShiftProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.turnos.GetTurnos"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		codes, err := shifts.GetShiftCodes(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("error al obtener el catálogo de turnos")
			http.Error(w, "error al obtener turnos", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, codes)
	}
}
