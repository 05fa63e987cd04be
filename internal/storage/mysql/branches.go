package mysql

import (
	"context"
	"fmt"

	"turnos-backend/internal/storage"
)

// GetBranchOffices devuelve las sucursales activas (status operativo).
func (s *Storage) GetBranchOffices(ctx context.Context) ([]storage.BranchOffice, error) {
	const op = "storage.mysql.GetBranchOffices"

	query := `
        SELECT
            id,
            branch_office,
            IFNULL(responsable, ''),
            IFNULL(principal, ''),
            IFNULL(zone, ''),
            IFNULL(segment, ''),
            IFNULL(address, ''),
            IFNULL(region, ''),
            IFNULL(commune, '')
        FROM QRY_BRANCH_OFFICES
        WHERE status_id = 7
        ORDER BY branch_office ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: error al obtener sucursales: %w", op, err)
	}
	defer rows.Close()

	var branches []storage.BranchOffice
	for rows.Next() {
		var b storage.BranchOffice
		err := rows.Scan(&b.ID, &b.Nombre, &b.Responsable, &b.Marca, &b.Zona,
			&b.Segmento, &b.Direccion, &b.Region, &b.Comuna)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}
