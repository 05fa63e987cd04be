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

type PlanningSaveProvider interface {
	ReplacePlanning(ctx context.Context, req storage.SavePlanning) (deleted, inserted int64, err error)
}

// validateRecords exige que cada registro caiga dentro del mes a guardar y
// pertenezca a un rut de la malla. Un registro fuera de la ventana quedaría
// huérfano: el borrado de ventana de guardados posteriores nunca lo alcanza.
func validateRecords(req storage.SavePlanning) error {
	ruts := make(map[string]bool, len(req.Ruts))
	for _, rut := range req.Ruts {
		ruts[rut] = true
	}

	for _, rec := range req.Data {
		fecha, err := time.Parse(storage.DateLayout, rec.Fecha)
		if err != nil {
			return fmt.Errorf("fecha inválida: %s", rec.Fecha)
		}
		if fecha.Year() != req.Year || int(fecha.Month()) != req.Month {
			return fmt.Errorf("fecha %s fuera del mes %02d-%d", rec.Fecha, req.Month, req.Year)
		}
		if !ruts[rec.Rut] {
			return fmt.Errorf("rut %s no está en la malla", rec.Rut)
		}
	}

	return nil
}

// SavePlanificacion guarda la malla de un mes completo: borra la ventana
// anterior de esos ruts y escribe los registros nuevos en una transacción.
// El último guardado gana; la respuesta informa cuánto se reemplazó.
func SavePlanificacion(log *slog.Logger, plan PlanningSaveProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.planificacion.SavePlanificacion"

		var req storage.SavePlanning
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		if req.Month < 1 || req.Month > 12 {
			http.Error(w, "mes fuera de rango", http.StatusBadRequest)
			return
		}
		if req.Sucursal == "" {
			http.Error(w, "falta la sucursal", http.StatusBadRequest)
			return
		}
		if len(req.Ruts) == 0 {
			http.Error(w, "la malla no tiene trabajadores", http.StatusBadRequest)
			return
		}
		if err := validateRecords(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		deleted, inserted, err := plan.ReplacePlanning(ctx, req)
		if err != nil {
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "error al guardar la planificación", http.StatusInternalServerError)
			return
		}

		log.Info("planificación guardada",
			slog.String("sucursal", req.Sucursal),
			slog.Int("year", req.Year), slog.Int("month", req.Month),
			slog.Int64("eliminados", deleted), slog.Int64("insertados", inserted))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":     "ok",
			"eliminados": deleted,
			"insertados": inserted,
		})
	}
}
