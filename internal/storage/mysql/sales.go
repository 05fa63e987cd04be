package mysql

import (
	"context"
	"fmt"

	"turnos-backend/internal/storage"
)

// GetDailySales devuelve la serie histórica de venta diaria por sucursal,
// ordenada por fecha. Es la entrada del módulo de proyección.
func (s *Storage) GetDailySales(ctx context.Context) ([]storage.SalesPoint, error) {
	const op = "storage.mysql.GetDailySales"

	query := `
        SELECT fecha, branch_office, total_venta
        FROM QRY_VENTAS_DIARIAS
        WHERE total_venta IS NOT NULL
        ORDER BY fecha ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: error al obtener ventas históricas: %w", op, err)
	}
	defer rows.Close()

	var points []storage.SalesPoint
	for rows.Next() {
		var p storage.SalesPoint
		if err := rows.Scan(&p.Fecha, &p.Sucursal, &p.TotalVenta); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}
