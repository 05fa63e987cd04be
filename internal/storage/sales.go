package storage

import "time"

// SalesPoint es una venta diaria agregada por sucursal, entrada de la
// proyección. Solo lectura.
type SalesPoint struct {
	Fecha      time.Time `json:"fecha"`
	Sucursal   string    `json:"branch_office"`
	TotalVenta float64   `json:"total_venta"`
}

// ProjectionPoint es una venta proyectada; nunca se persiste.
type ProjectionPoint struct {
	Fecha      time.Time `json:"fecha"`
	Sucursal   string    `json:"branch_office"`
	Proyeccion float64   `json:"proyeccion_venta"`
}
