package storage

// Worker es un trabajador del roster de una sucursal. HorasSemana son las
// horas semanales de contrato.
type Worker struct {
	Rut         string  `json:"rut"`
	Nombre      string  `json:"trabajador"`
	HorasSemana float64 `json:"horas"`
	Sucursal    string  `json:"sucursal"`
	Supervisor  string  `json:"supervisor"`
}
