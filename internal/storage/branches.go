package storage

type BranchOffice struct {
	ID          int64  `json:"branch_office_id"`
	Nombre      string `json:"branch_office"`
	Responsable string `json:"responsable"`
	Marca       string `json:"marca"`
	Zona        string `json:"zona"`
	Segmento    string `json:"segmento"`
	Direccion   string `json:"direccion"`
	Region      string `json:"region"`
	Comuna      string `json:"commune"`
}
