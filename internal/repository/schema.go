package repository

import (
	"context"
	"time"
)

// EnsureSchema creates the tables on first run. The seeder calls this before
// loading data so a fresh database needs no manual setup.
func (r *Repository) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS centros (
			centro_id TEXT PRIMARY KEY,
			nombre TEXT NOT NULL,
			activo BOOLEAN NOT NULL DEFAULT TRUE,
			orden INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS dias_semana (
			dow INTEGER PRIMARY KEY CHECK (dow BETWEEN 0 AND 6),
			label TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS horas_base (
			centro_id TEXT NOT NULL REFERENCES centros (centro_id) ON DELETE CASCADE,
			dow INTEGER NOT NULL CHECK (dow BETWEEN 0 AND 6),
			horas DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (horas >= 0),
			PRIMARY KEY (centro_id, dow)
		)`,
		`CREATE TABLE IF NOT EXISTS calendario (
			fecha DATE PRIMARY KEY,
			tipo TEXT NOT NULL,
			horas DOUBLE PRECISION NOT NULL DEFAULT 0,
			descripcion TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS ajustes (
			fecha DATE NOT NULL,
			centro_id TEXT NOT NULL REFERENCES centros (centro_id) ON DELETE CASCADE,
			horas DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (horas >= 0),
			motivo TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (fecha, centro_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := r.dbpool.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
