package domain

// Source tags carried by resolved schedule items.
const (
	SourceBase     = "base"
	SourceOverride = "override"
	SourceHoliday  = "holiday"
	SourceClosure  = "closure"
)

type BaseRow struct {
	CentroID string  `json:"centroId"`
	Dow      int32   `json:"dow"`
	Horas    float64 `json:"horas"`
}

// BaseTable is the recurring weekly plan: centroId -> dow -> horas.
type BaseTable map[string]map[int32]float64

// CalendarDay marks a whole date as holiday or closure for every center.
// Horas is normally 0; a nonzero value forces that many hours instead.
type CalendarDay struct {
	Fecha       string  `json:"fecha"`
	Tipo        string  `json:"tipo"`
	Horas       float64 `json:"horas"`
	Descripcion string  `json:"descripcion"`
}

// Override is a persisted exception keyed by (fecha, centroId). It wins over
// base, holiday and closure values, including when Horas is an explicit zero.
type Override struct {
	Fecha    string  `json:"fecha"`
	CentroID string  `json:"centroId"`
	Horas    float64 `json:"horas"`
	Motivo   string  `json:"motivo"`
}

// ScheduleItem is one resolved (fecha, centro) cell. It is computed fresh on
// every schedule query and never persisted.
type ScheduleItem struct {
	Fecha    string  `json:"fecha"`
	CentroID string  `json:"centroId"`
	Horas    float64 `json:"horas"`
	Fuente   string  `json:"fuente"`
}

type TotalRow struct {
	Centro string  `json:"centro"`
	Horas  float64 `json:"horas"`
}

type Totals struct {
	Total float64    `json:"total"`
	Rows  []TotalRow `json:"rows"`
}

type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Config is the snapshot the clients load first; the range it carries drives
// the schedule and totals queries that follow.
type Config struct {
	Year    int32     `json:"year"`
	Range   Range     `json:"range"`
	Centers []Centro  `json:"centers"`
	Dow     []Weekday `json:"dow"`
	Base    BaseTable `json:"base"`
}
