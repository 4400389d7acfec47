package repository

import (
	"context"
	"time"

	"github.com/horas-centros/backend/internal/domain"
)

func (r *Repository) GetOverrides(from, to string) ([]domain.Override, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT to_char(fecha, 'YYYY-MM-DD'), centro_id, horas, motivo
		FROM ajustes
		WHERE fecha >= $1::date AND fecha <= $2::date
		ORDER BY fecha, centro_id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := []domain.Override{}
	for rows.Next() {
		var ov domain.Override
		if err := rows.Scan(&ov.Fecha, &ov.CentroID, &ov.Horas, &ov.Motivo); err != nil {
			return nil, err
		}
		overrides = append(overrides, ov)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

// UpsertOverride replaces any prior value for the same (fecha, centro);
// overrides carry no history.
func (r *Repository) UpsertOverride(ov *domain.Override) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO ajustes (fecha, centro_id, horas, motivo)
		VALUES ($1::date, $2, $3, $4)
		ON CONFLICT (fecha, centro_id) DO UPDATE
		SET horas = EXCLUDED.horas, motivo = EXCLUDED.motivo
	`

	_, err := r.dbpool.ExecContext(ctx, query, ov.Fecha, ov.CentroID, ov.Horas, ov.Motivo)
	return err
}

func (r *Repository) DeleteOverride(fecha, centroID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM ajustes WHERE fecha = $1::date AND centro_id = $2`

	_, err := r.dbpool.ExecContext(ctx, query, fecha, centroID)
	return err
}
