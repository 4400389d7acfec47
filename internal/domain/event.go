package domain

import "time"

// Actions reported on the schedule_events queue.
const (
	ChangeSaveBase       = "savebase"
	ChangeSaveOverride   = "saveoverride"
	ChangeDeleteOverride = "deleteoverride"
)

// ScheduleChange is published after every successful mutation so consumers
// can refetch; Fecha and CentroID are empty for base-table saves.
type ScheduleChange struct {
	Action   string    `json:"action"`
	Fecha    string    `json:"fecha,omitempty"`
	CentroID string    `json:"centroId,omitempty"`
	At       time.Time `json:"at"`
}
