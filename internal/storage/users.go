package storage

import "errors"

var ErrUserNotFound = errors.New("usuario no encontrado")

type User struct {
	Rut            string `json:"rut"`
	FullName       string `json:"full_name"`
	HashedPassword string `json:"-"`
}
