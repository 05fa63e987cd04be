package storage

// DateLayout es el formato de fecha que viaja en los payloads de planificación.
const DateLayout = "2006-01-02"

// PlanningRecord es la unidad persistida de una malla: una celda no vacía.
type PlanningRecord struct {
	Rut      string `json:"rut"`
	Sucursal string `json:"sucursal,omitempty"`
	Fecha    string `json:"fecha"`
	Codigo   string `json:"codigo"`
}

// SavePlanning es el payload de guardado de una malla mensual. Ruts lleva la
// lista completa de trabajadores de la malla editada, tengan o no turnos:
// define la ventana de borrado.
type SavePlanning struct {
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Sucursal string           `json:"sucursal"`
	Ruts     []string         `json:"ruts"`
	Data     []PlanningRecord `json:"data"`
}
