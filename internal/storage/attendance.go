package storage

import "time"

type Absence struct {
	Rut      string    `json:"rut"`
	Nombre   string    `json:"nombre"`
	Sucursal string    `json:"sucursal"`
	Fecha    time.Time `json:"fecha_inasistencia"`
	Motivo   string    `json:"motivo"`
}
