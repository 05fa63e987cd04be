package mysql

import (
	"context"
	"fmt"

	"turnos-backend/internal/storage"
)

func (s *Storage) GetShiftCodes(ctx context.Context) ([]storage.ShiftCode, error) {
	const op = "storage.mysql.GetShiftCodes"

	// working viene en segundos en la tabla de turnos.
	query := `
        SELECT codigo, working, IFNULL(desde, ''), IFNULL(hasta, '')
        FROM asistencia_turnos
        ORDER BY codigo ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: error al obtener catálogo de turnos: %w", op, err)
	}
	defer rows.Close()

	var codes []storage.ShiftCode
	for rows.Next() {
		var c storage.ShiftCode
		var workingSeconds float64

		if err := rows.Scan(&c.Codigo, &workingSeconds, &c.Desde, &c.Hasta); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		c.WorkingMinutes = workingSeconds / 60

		codes = append(codes, c)
	}

	return codes, rows.Err()
}

func (s *Storage) SaveShiftCode(ctx context.Context, c storage.ShiftCode) error {
	const op = "storage.mysql.SaveShiftCode"

	query := `
        INSERT INTO asistencia_turnos (codigo, working, desde, hasta)
        VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, c.Codigo, c.WorkingMinutes*60, c.Desde, c.Hasta)
	if err != nil {
		return fmt.Errorf("%s: error al crear turno %s: %w", op, c.Codigo, err)
	}

	return nil
}

func (s *Storage) UpdateShiftCode(ctx context.Context, codigo string, c storage.ShiftCode) error {
	const op = "storage.mysql.UpdateShiftCode"

	query := `
        UPDATE asistencia_turnos
        SET working = ?, desde = ?, hasta = ?
        WHERE codigo = ?`

	res, err := s.db.ExecContext(ctx, query, c.WorkingMinutes*60, c.Desde, c.Hasta, codigo)
	if err != nil {
		return fmt.Errorf("%s: error al actualizar turno %s: %w", op, codigo, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: turno %s no existe", op, codigo)
	}

	return nil
}
