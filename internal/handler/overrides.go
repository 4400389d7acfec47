package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/horas-centros/backend/internal/domain"
)

func (h *Handler) SaveOverride(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fecha    string  `json:"fecha" validate:"required,datetime=2006-01-02"`
		CentroID string  `json:"centroId" validate:"required"`
		Horas    float64 `json:"horas" validate:"gte=0"`
		Motivo   string  `json:"motivo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ov := &domain.Override{
		Fecha:    req.Fecha,
		CentroID: req.CentroID,
		Horas:    req.Horas,
		Motivo:   req.Motivo,
	}

	if err := h.repository.UpsertOverride(ov); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "ajustes_centro_id_fkey":
				h.errorResponse(w, r, "el centro no existe")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.publishScheduleChange(domain.ChangeSaveOverride, ov.Fecha, ov.CentroID)

	h.successResponse(w, r, "ajuste guardado", ov)
}

func (h *Handler) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fecha    string `json:"fecha" validate:"required,datetime=2006-01-02"`
		CentroID string `json:"centroId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.DeleteOverride(req.Fecha, req.CentroID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.publishScheduleChange(domain.ChangeDeleteOverride, req.Fecha, req.CentroID)

	h.successResponse(w, r, "ajuste eliminado", nil)
}
