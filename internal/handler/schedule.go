package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/horas-centros/backend/internal/domain"
	"github.com/horas-centros/backend/internal/horario"
)

// rangeParams reads from/to query params, falling back to the planner range.
func (h *Handler) rangeParams(r *http.Request) (string, string) {
	from := r.URL.Query().Get("from")
	if from == "" {
		from = h.config.Planner.RangeStart
	}
	to := r.URL.Query().Get("to")
	if to == "" {
		to = h.config.Planner.RangeEnd
	}
	return from, to
}

// resolveRange loads a fresh snapshot from the store and resolves it. Every
// query recomputes from scratch; the database is the single source of truth
// and nothing is cached in between.
func (h *Handler) resolveRange(from, to, centroID string) ([]domain.ScheduleItem, []domain.Centro, error) {
	centers, err := h.repository.GetCentros()
	if err != nil {
		return nil, nil, err
	}
	base, err := h.repository.GetBaseTable()
	if err != nil {
		return nil, nil, err
	}
	calendar, err := h.repository.GetCalendarDays(from, to)
	if err != nil {
		return nil, nil, err
	}
	overrides, err := h.repository.GetOverrides(from, to)
	if err != nil {
		return nil, nil, err
	}

	snap := horario.Snapshot{
		Centers:   centers,
		Base:      base,
		Calendar:  calendar,
		Overrides: overrides,
	}
	items, err := horario.Resolve(snap, from, to, centroID)
	if err != nil {
		return nil, nil, err
	}

	return items, centers, nil
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	from, to := h.rangeParams(r)
	centroID := r.URL.Query().Get("centroId")

	items, _, err := h.resolveRange(from, to, centroID)
	if err != nil {
		switch {
		case errors.Is(err, horario.ErrInvalidRange):
			h.errorResponse(w, r, "el rango de fechas es inválido")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "cronograma obtenido", map[string]any{"items": items})
}

func (h *Handler) totalsForRange(from, to string) (*domain.Totals, error) {
	items, centers, err := h.resolveRange(from, to, "")
	if err != nil {
		return nil, err
	}

	return &domain.Totals{
		Total: horario.TotalForRange(items),
		Rows:  horario.TotalsByCenter(items, centers),
	}, nil
}

func (h *Handler) GetTotals(w http.ResponseWriter, r *http.Request) {
	from, to := h.rangeParams(r)

	totals, err := h.totalsForRange(from, to)
	if err != nil {
		switch {
		case errors.Is(err, horario.ErrInvalidRange):
			h.errorResponse(w, r, "el rango de fechas es inválido")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "totales obtenidos", totals)
}

func (h *Handler) ExportTotalsCSV(w http.ResponseWriter, r *http.Request) {
	from, to := h.rangeParams(r)

	totals, err := h.totalsForRange(from, to)
	if err != nil {
		switch {
		case errors.Is(err, horario.ErrInvalidRange):
			h.errorResponse(w, r, "el rango de fechas es inválido")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	filename := horario.CSVFileName(h.config.Planner.Year)
	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(horario.CSV(totals.Rows))); err != nil {
		h.logInternalServerError(r, err)
	}
}
