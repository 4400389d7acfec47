package domain

type Centro struct {
	CentroID string `json:"centroId"`
	Nombre   string `json:"nombre"`
	Activo   bool   `json:"activo"`
	Orden    int32  `json:"-"`
}

// Weekday is one column of the weekly base grid. Dow follows the 0-6
// convention of the configuration source, with 0 = Sunday.
type Weekday struct {
	Dow   int32  `json:"dow"`
	Label string `json:"label"`
}
