package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"turnos-backend/internal/storage"
)

func (s *Storage) GetUserByRut(ctx context.Context, rut string) (*storage.User, error) {
	const op = "storage.mysql.GetUserByRut"

	query := `SELECT rut, full_name, hashed_password FROM users WHERE rut = ?`

	var u storage.User
	err := s.db.QueryRowContext(ctx, query, rut).Scan(&u.Rut, &u.FullName, &u.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: error al obtener usuario: %w", op, err)
	}

	return &u, nil
}
