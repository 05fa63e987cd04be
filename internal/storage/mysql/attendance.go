package mysql

import (
	"context"
	"fmt"

	"turnos-backend/internal/storage"
)

func (s *Storage) GetAbsences(ctx context.Context, year, month int) ([]storage.Absence, error) {
	const op = "storage.mysql.GetAbsences"

	query := `
        SELECT rut, nombre, sucursal, FechaInasistencia, IFNULL(motivo, '')
        FROM INASISTENCIAS
        WHERE YEAR(FechaInasistencia) = ? AND MONTH(FechaInasistencia) = ?
        ORDER BY FechaInasistencia ASC`

	rows, err := s.db.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: error al obtener inasistencias: %w", op, err)
	}
	defer rows.Close()

	var absences []storage.Absence
	for rows.Next() {
		var a storage.Absence
		if err := rows.Scan(&a.Rut, &a.Nombre, &a.Sucursal, &a.Fecha, &a.Motivo); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		absences = append(absences, a)
	}

	return absences, rows.Err()
}
