package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/horas-centros/backend/internal/domain"
)

func (h *Handler) SaveBase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows []struct {
			CentroID string  `json:"centroId" validate:"required"`
			Dow      int32   `json:"dow" validate:"gte=0,lte=6"`
			Horas    float64 `json:"horas" validate:"gte=0"`
		} `json:"rows" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	rows := make([]domain.BaseRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, domain.BaseRow{
			CentroID: row.CentroID,
			Dow:      row.Dow,
			Horas:    row.Horas,
		})
	}

	if err := h.repository.SaveBase(rows); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "horas_base_centro_id_fkey":
				h.errorResponse(w, r, "el centro no existe")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.publishScheduleChange(domain.ChangeSaveBase, "", "")

	h.successResponse(w, r, "base semanal guardada", nil)
}
