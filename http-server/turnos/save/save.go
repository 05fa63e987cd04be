package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"turnos-backend/internal/storage"
)

type ShiftCreateProvider interface {
	SaveShiftCode(ctx context.Context, c storage.ShiftCode) error
}

// SaveTurnoAdmin crea un código de turno nuevo en el catálogo. Solo
// accesible tras el basic auth del subrouter de administración.
func SaveTurnoAdmin(log *slog.Logger, shifts ShiftCreateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.turnos.SaveTurnoAdmin"

		var req storage.ShiftCode
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		if req.Codigo == "" {
			http.Error(w, "el código de turno es obligatorio", http.StatusBadRequest)
			return
		}
		if req.WorkingMinutes < 0 {
			http.Error(w, "la duración no puede ser negativa", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := shifts.SaveShiftCode(ctx, req); err != nil {
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "error al crear el turno", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "created"})
	}
}
