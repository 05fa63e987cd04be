package update

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"turnos-backend/internal/storage"
)

type ShiftUpdateProvider interface {
	UpdateShiftCode(ctx context.Context, codigo string, c storage.ShiftCode) error
}

// UpdateTurnoAdmin actualiza la duración y el horario de un código existente.
// El código va en la URL; el cuerpo trae los valores nuevos.
func UpdateTurnoAdmin(log *slog.Logger, shifts ShiftUpdateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.turnos.UpdateTurnoAdmin"

		codigo := chi.URLParam(r, "codigo")
		if codigo == "" {
			http.Error(w, "falta el código de turno", http.StatusBadRequest)
			return
		}

		var req storage.ShiftCode
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}
		if req.WorkingMinutes < 0 {
			http.Error(w, "la duración no puede ser negativa", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := shifts.UpdateShiftCode(ctx, codigo, req); err != nil {
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "error al actualizar el turno", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
