package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"turnos-backend/internal/service/planning"
	"turnos-backend/internal/storage"
)

type GridBuilder interface {
	BuildGrid(ctx context.Context, scope planning.Scope) (*planning.Grid, error)
}

// GetEstadisticas calcula los indicadores de una malla en edición: el cuerpo
// trae el alcance y las celdas tal como están en pantalla, sin exigir que la
// planificación esté guardada.
func GetEstadisticas(log *slog.Logger, grids GridBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.planificacion.GetEstadisticas"

		var req struct {
			planning.Scope
			Data []storage.PlanningRecord `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		if req.Month < 1 || req.Month > 12 {
			http.Error(w, "mes fuera de rango", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		grid, err := grids.BuildGrid(ctx, req.Scope)
		if err != nil {
			if errors.Is(err, planning.ErrEmptyCatalog) {
				http.Error(w, "no hay códigos de turno definidos", http.StatusConflict)
				return
			}
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "error al armar la malla", http.StatusInternalServerError)
			return
		}

		grid.ApplyRecords(req.Data)

		result := planning.Aggregate(grid)
		if len(result.UnknownCodes) > 0 {
			log.Warn("la malla trae códigos de turno que no están en el catálogo",
				slog.String("op", op), slog.Any("codigos", result.UnknownCodes))
		}

		render.JSON(w, r, result)
	}
}
