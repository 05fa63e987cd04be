package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"turnos-backend/internal/storage"
)

type BranchProvider interface {
	GetBranchOffices(ctx context.Context) ([]storage.BranchOffice, error)
}

// GetSucursales devuelve las sucursales operativas.
func GetSucursales(log *slog.Logger, branches BranchProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.sucursales.GetSucursales"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := branches.GetBranchOffices(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("error al obtener las sucursales")
			http.Error(w, "error al obtener sucursales", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, list)
	}
}
