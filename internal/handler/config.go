package handler

import (
	"net/http"

	"github.com/horas-centros/backend/internal/domain"
)

// snapshotConfig assembles the configuration snapshot clients load first:
// year, range, ordered centers, weekday definitions and the base table.
func (h *Handler) snapshotConfig() (*domain.Config, error) {
	centers, err := h.repository.GetCentros()
	if err != nil {
		return nil, err
	}
	weekdays, err := h.repository.GetWeekdays()
	if err != nil {
		return nil, err
	}
	base, err := h.repository.GetBaseTable()
	if err != nil {
		return nil, err
	}

	return &domain.Config{
		Year: h.config.Planner.Year,
		Range: domain.Range{
			Start: h.config.Planner.RangeStart,
			End:   h.config.Planner.RangeEnd,
		},
		Centers: centers,
		Dow:     weekdays,
		Base:    base,
	}, nil
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.snapshotConfig()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "configuración obtenida", cfg)
}
