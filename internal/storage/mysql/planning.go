package mysql

import (
	"context"
	"fmt"
	"time"

	"turnos-backend/internal/storage"
)

// monthWindow devuelve el primer y último día del mes, inclusive. AddDate se
// encarga del salto diciembre→enero y de los años bisiestos.
func monthWindow(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// ReplacePlanning reemplaza la planificación del mes para los ruts entregados:
// borra la ventana completa (ruts × sucursal × [primer..último día]) y vuelve a
// insertar las celdas no vacías, todo en una transacción. Devuelve cuántos
// registros se borraron y cuántos se insertaron.
func (s *Storage) ReplacePlanning(ctx context.Context, req storage.SavePlanning) (deleted, inserted int64, err error) {
	const op = "storage.mysql.ReplacePlanning"

	if len(req.Ruts) == 0 {
		return 0, 0, fmt.Errorf("%s: lista de ruts vacía", op)
	}

	first, last := monthWindow(req.Year, req.Month)

	// Un registro fuera de la ventana quedaría huérfano: ningún borrado de
	// ventana posterior lo alcanza. Se rechaza antes de tocar la base.
	for _, rec := range req.Data {
		fecha, err := time.Parse(storage.DateLayout, rec.Fecha)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: fecha inválida %q: %w", op, rec.Fecha, err)
		}
		if fecha.Before(first) || fecha.After(last) {
			return 0, 0, fmt.Errorf("%s: fecha %s fuera de la ventana %s..%s", op,
				rec.Fecha, first.Format(storage.DateLayout), last.Format(storage.DateLayout))
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	delQuery := `
        DELETE FROM asistencia_planificacion
        WHERE sucursal = ?
          AND fecha BETWEEN ? AND ?
          AND rut IN (` + placeholders(len(req.Ruts)) + `)`

	delArgs := make([]interface{}, 0, len(req.Ruts)+3)
	delArgs = append(delArgs, req.Sucursal, first.Format(storage.DateLayout), last.Format(storage.DateLayout))
	for _, rut := range req.Ruts {
		delArgs = append(delArgs, rut)
	}

	res, err := tx.ExecContext(ctx, delQuery, delArgs...)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: error al borrar planificación previa: %w", op, err)
	}
	deleted, err = res.RowsAffected()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO asistencia_planificacion (rut, sucursal, fecha, codigo)
        VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: error al preparar inserción: %w", op, err)
	}
	defer stmt.Close()

	for _, rec := range req.Data {
		if _, err := stmt.ExecContext(ctx, rec.Rut, req.Sucursal, rec.Fecha, rec.Codigo); err != nil {
			return 0, 0, fmt.Errorf("%s: error al insertar turno rut=%s fecha=%s: %w", op, rec.Rut, rec.Fecha, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return deleted, inserted, nil
}

// GetPlanning devuelve los registros guardados de un mes y sucursal, para
// reconstruir la malla.
func (s *Storage) GetPlanning(ctx context.Context, year, month int, sucursal string) ([]storage.PlanningRecord, error) {
	const op = "storage.mysql.GetPlanning"

	first, last := monthWindow(year, month)

	query := `
        SELECT rut, sucursal, DATE_FORMAT(fecha, '%Y-%m-%d'), codigo
        FROM asistencia_planificacion
        WHERE sucursal = ? AND fecha BETWEEN ? AND ?
        ORDER BY rut, fecha`

	rows, err := s.db.QueryContext(ctx, query,
		sucursal, first.Format(storage.DateLayout), last.Format(storage.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("%s: error al obtener planificación: %w", op, err)
	}
	defer rows.Close()

	var records []storage.PlanningRecord
	for rows.Next() {
		var rec storage.PlanningRecord
		if err := rows.Scan(&rec.Rut, &rec.Sucursal, &rec.Fecha, &rec.Codigo); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
