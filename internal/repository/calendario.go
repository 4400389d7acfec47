package repository

import (
	"context"
	"time"

	"github.com/horas-centros/backend/internal/domain"
)

// GetCalendarDays returns the holiday/closure markers inside [from, to].
func (r *Repository) GetCalendarDays(from, to string) ([]domain.CalendarDay, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT to_char(fecha, 'YYYY-MM-DD'), tipo, horas, descripcion
		FROM calendario
		WHERE fecha >= $1::date AND fecha <= $2::date
		ORDER BY fecha
	`

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []domain.CalendarDay{}
	for rows.Next() {
		var d domain.CalendarDay
		if err := rows.Scan(&d.Fecha, &d.Tipo, &d.Horas, &d.Descripcion); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func (r *Repository) UpsertCalendarDay(d *domain.CalendarDay) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO calendario (fecha, tipo, horas, descripcion)
		VALUES ($1::date, $2, $3, $4)
		ON CONFLICT (fecha) DO UPDATE
		SET tipo = EXCLUDED.tipo, horas = EXCLUDED.horas, descripcion = EXCLUDED.descripcion
	`

	_, err := r.dbpool.ExecContext(ctx, query, d.Fecha, d.Tipo, d.Horas, d.Descripcion)
	return err
}
