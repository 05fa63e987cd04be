package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"turnos-backend/internal/storage"
)

type IndicatorProvider interface {
	GetIndicator(ctx context.Context, name string) ([]storage.IndicatorValue, error)
}

// GetIndicador devuelve la serie histórica del indicador económico pedido en
// la URL (uf, dolar, euro, ipc, imacec, tasa_desempleo).
func GetIndicador(log *slog.Logger, indicators IndicatorProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.indicadores.GetIndicador"

		name := chi.URLParam(r, "indicador")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		values, err := indicators.GetIndicator(ctx, name)
		if err != nil {
			if errors.Is(err, storage.ErrUnknownIndicator) {
				http.Error(w, "indicador desconocido", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("error al obtener el indicador")
			http.Error(w, "error al obtener el indicador", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, values)
	}
}
