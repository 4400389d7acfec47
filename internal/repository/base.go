package repository

import (
	"context"
	"time"

	"github.com/horas-centros/backend/internal/domain"
)

func (r *Repository) GetBaseTable() (domain.BaseTable, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT centro_id, dow, horas FROM horas_base`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	base := domain.BaseTable{}
	for rows.Next() {
		var row domain.BaseRow
		if err := rows.Scan(&row.CentroID, &row.Dow, &row.Horas); err != nil {
			return nil, err
		}
		if _, exists := base[row.CentroID]; !exists {
			base[row.CentroID] = make(map[int32]float64)
		}
		base[row.CentroID][row.Dow] = row.Horas
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return base, nil
}

// SaveBase replaces the (centro, dow) pairs supplied in one transaction.
// Pairs not present in rows keep their stored value.
func (r *Repository) SaveBase(rows []domain.BaseRow) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO horas_base (centro_id, dow, horas)
		VALUES ($1, $2, $3)
		ON CONFLICT (centro_id, dow) DO UPDATE SET horas = EXCLUDED.horas
	`

	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, query, row.CentroID, row.Dow, row.Horas); err != nil {
			return err
		}
	}

	return tx.Commit()
}
