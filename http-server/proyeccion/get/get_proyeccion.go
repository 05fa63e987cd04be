package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"
	"turnos-backend/internal/storage"
)

const (
	defaultHorizonDays = 30
	maxHorizonDays     = 365
)

type ProjectionProvider interface {
	Project(ctx context.Context, branches []string, horizonDays int) ([]storage.ProjectionPoint, error)
}

// GetProyeccion devuelve la proyección de venta diaria. Query params:
// sucursales (lista separada por comas, vacío = todas) y dias (horizonte,
// por defecto 30, máximo 365).
func GetProyeccion(log *slog.Logger, proj ProjectionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.proyeccion.GetProyeccion"

		days := defaultHorizonDays
		if s := r.URL.Query().Get("dias"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil || v < 1 || v > maxHorizonDays {
				http.Error(w, "dias inválido", http.StatusBadRequest)
				return
			}
			days = v
		}

		var branches []string
		if s := r.URL.Query().Get("sucursales"); s != "" {
			for _, b := range strings.Split(s, ",") {
				if b = strings.TrimSpace(b); b != "" {
					branches = append(branches, b)
				}
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		points, err := proj.Project(ctx, branches, days)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("error al proyectar ventas")
			http.Error(w, "error al proyectar ventas", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, points)
	}
}
