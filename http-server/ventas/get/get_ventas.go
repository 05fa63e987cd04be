package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"turnos-backend/internal/storage"
)

type SalesProvider interface {
	GetDailySales(ctx context.Context) ([]storage.SalesPoint, error)
}

// GetVentas devuelve el histórico de venta diaria por sucursal.
func GetVentas(log *slog.Logger, sales SalesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.ventas.GetVentas"

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		points, err := sales.GetDailySales(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("error al obtener las ventas históricas")
			http.Error(w, "error al obtener ventas", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, points)
	}
}
