package repository

import (
	"context"
	"time"

	"github.com/horas-centros/backend/internal/domain"
)

// GetCentros returns every center, active or not, in the canonical
// configuration order. Callers decide what the active flag means for them.
func (r *Repository) GetCentros() ([]domain.Centro, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT centro_id, nombre, activo, orden
		FROM centros
		ORDER BY orden, centro_id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	centros := []domain.Centro{}
	for rows.Next() {
		var c domain.Centro
		if err := rows.Scan(&c.CentroID, &c.Nombre, &c.Activo, &c.Orden); err != nil {
			return nil, err
		}
		centros = append(centros, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return centros, nil
}

func (r *Repository) UpsertCentro(c *domain.Centro) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO centros (centro_id, nombre, activo, orden)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (centro_id) DO UPDATE
		SET nombre = EXCLUDED.nombre, activo = EXCLUDED.activo, orden = EXCLUDED.orden
	`

	_, err := r.dbpool.ExecContext(ctx, query, c.CentroID, c.Nombre, c.Activo, c.Orden)
	return err
}

func (r *Repository) GetWeekdays() ([]domain.Weekday, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT dow, label FROM dias_semana ORDER BY dow`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weekdays := []domain.Weekday{}
	for rows.Next() {
		var d domain.Weekday
		if err := rows.Scan(&d.Dow, &d.Label); err != nil {
			return nil, err
		}
		weekdays = append(weekdays, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return weekdays, nil
}

func (r *Repository) UpsertWeekday(d *domain.Weekday) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO dias_semana (dow, label)
		VALUES ($1, $2)
		ON CONFLICT (dow) DO UPDATE SET label = EXCLUDED.label
	`

	_, err := r.dbpool.ExecContext(ctx, query, d.Dow, d.Label)
	return err
}
