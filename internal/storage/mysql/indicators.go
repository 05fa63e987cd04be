package mysql

import (
	"context"
	"fmt"

	"turnos-backend/internal/storage"
)

// indicatorTables mapea el nombre público del indicador a su tabla. La lista
// blanca evita interpolar nombres de tabla desde el request.
var indicatorTables = map[string]string{
	"uf":             "DM_uf",
	"dolar":          "DM_dolar",
	"euro":           "DM_euro",
	"ipc":            "DM_ipc",
	"imacec":         "DM_imacec",
	"tasa_desempleo": "DM_tasa_desempleo",
}

func (s *Storage) GetIndicator(ctx context.Context, name string) ([]storage.IndicatorValue, error) {
	const op = "storage.mysql.GetIndicator"

	table, ok := indicatorTables[name]
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", op, name, storage.ErrUnknownIndicator)
	}

	query := fmt.Sprintf(`SELECT fecha, valor FROM %s ORDER BY fecha ASC`, table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: error al obtener indicador %s: %w", op, name, err)
	}
	defer rows.Close()

	var values []storage.IndicatorValue
	for rows.Next() {
		var v storage.IndicatorValue
		if err := rows.Scan(&v.Fecha, &v.Valor); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		values = append(values, v)
	}

	return values, rows.Err()
}
