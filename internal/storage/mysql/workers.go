package mysql

import (
	"context"
	"fmt"

	"turnos-backend/internal/storage"
)

// GetWorkers devuelve el roster activo. Los filtros por supervisor y sucursal
// son opcionales; vacío significa sin filtro.
func (s *Storage) GetWorkers(ctx context.Context, supervisor, sucursal string) ([]storage.Worker, error) {
	const op = "storage.mysql.GetWorkers"

	query := `
        SELECT DISTINCT rut, trabajador, IFNULL(horas, 0), sucursal, supervisor
        FROM QRY_TRABAJADORES
        WHERE activo = TRUE`
	var args []interface{}

	if supervisor != "" {
		query += ` AND supervisor = ?`
		args = append(args, supervisor)
	}
	if sucursal != "" {
		query += ` AND sucursal = ?`
		args = append(args, sucursal)
	}
	query += ` ORDER BY trabajador ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: error al obtener trabajadores: %w", op, err)
	}
	defer rows.Close()

	var workers []storage.Worker
	for rows.Next() {
		var w storage.Worker

		if err := rows.Scan(&w.Rut, &w.Nombre, &w.HorasSemana, &w.Sucursal, &w.Supervisor); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		workers = append(workers, w)
	}

	return workers, rows.Err()
}
