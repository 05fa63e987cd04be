package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"turnos-backend/internal/storage"
)

type WorkerProvider interface {
	GetWorkers(ctx context.Context, supervisor, sucursal string) ([]storage.Worker, error)
}

// GetTrabajadores devuelve la nómina, filtrable por supervisor y sucursal vía
// query params. Sin filtros devuelve todos los trabajadores activos.
func GetTrabajadores(log *slog.Logger, workers WorkerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.trabajadores.GetTrabajadores"

		supervisor := r.URL.Query().Get("supervisor")
		sucursal := r.URL.Query().Get("sucursal")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := workers.GetWorkers(ctx, supervisor, sucursal)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("error al obtener la nómina de trabajadores")
			http.Error(w, "error al obtener trabajadores", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, list)
	}
}
