// Package seed loads the initial plan data: centers in their canonical
// order, the Monday-Saturday weekday grid, a starting base table and the
// 2026 holiday/closure calendar. Sunday gets no column on purpose; it
// resolves to zero through the base table unless an override says otherwise.
package seed

import (
	"log/slog"
	"time"

	"github.com/horas-centros/backend/internal/domain"
	"github.com/horas-centros/backend/internal/repository"
)

var centros = []domain.Centro{
	{CentroID: "norte", Nombre: "Centro Norte", Activo: true, Orden: 1},
	{CentroID: "sur", Nombre: "Centro Sur", Activo: true, Orden: 2},
	{CentroID: "oriente", Nombre: "Centro Oriente", Activo: true, Orden: 3},
}

var diasSemana = []domain.Weekday{
	{Dow: 1, Label: "lunes"},
	{Dow: 2, Label: "martes"},
	{Dow: 3, Label: "miércoles"},
	{Dow: 4, Label: "jueves"},
	{Dow: 5, Label: "viernes"},
	{Dow: 6, Label: "sábado"},
}

// Starting weekly plan; half-hour steps are fine.
var horasBase = map[string][]float64{
	// lunes..sábado
	"norte":   {4, 4, 4, 4, 4, 2},
	"sur":     {3.5, 3.5, 3.5, 3.5, 3.5, 0},
	"oriente": {2, 2, 2.5, 2, 2, 0},
}

var festivos2026 = map[string]string{
	"2026-01-01": "Año Nuevo",
	"2026-01-12": "Día de los Reyes Magos",
	"2026-03-23": "Día de San José",
	"2026-04-02": "Jueves Santo",
	"2026-04-03": "Viernes Santo",
	"2026-05-01": "Día del Trabajo",
	"2026-07-20": "Día de la Independencia",
	"2026-08-07": "Batalla de Boyacá",
	"2026-12-08": "Inmaculada Concepción",
	"2026-12-25": "Navidad",
}

// Recess weeks when every center closes.
var cierres2026 = [][2]string{
	{"2026-06-15", "2026-06-20"},
	{"2026-10-05", "2026-10-10"},
}

func SeedAll(r *repository.Repository) error {
	for i := range centros {
		if err := r.UpsertCentro(&centros[i]); err != nil {
			return err
		}
	}
	slog.Info("centros cargados", "count", len(centros))

	for i := range diasSemana {
		if err := r.UpsertWeekday(&diasSemana[i]); err != nil {
			return err
		}
	}
	slog.Info("días de la semana cargados", "count", len(diasSemana))

	rows := []domain.BaseRow{}
	for centroID, horas := range horasBase {
		for i, h := range horas {
			rows = append(rows, domain.BaseRow{
				CentroID: centroID,
				Dow:      int32(i + 1),
				Horas:    h,
			})
		}
	}
	if err := r.SaveBase(rows); err != nil {
		return err
	}
	slog.Info("base semanal cargada", "rows", len(rows))

	count := 0
	for fecha, nombre := range festivos2026 {
		day := domain.CalendarDay{Fecha: fecha, Tipo: domain.SourceHoliday, Descripcion: nombre}
		if err := r.UpsertCalendarDay(&day); err != nil {
			return err
		}
		count++
	}
	for _, rango := range cierres2026 {
		fechas, err := expandRange(rango[0], rango[1])
		if err != nil {
			return err
		}
		for _, fecha := range fechas {
			day := domain.CalendarDay{Fecha: fecha, Tipo: domain.SourceClosure, Descripcion: "semana de receso"}
			if err := r.UpsertCalendarDay(&day); err != nil {
				return err
			}
			count++
		}
	}
	slog.Info("calendario cargado", "days", count)

	return nil
}

func expandRange(from, to string) ([]string, error) {
	a, err := time.ParseInLocation("2006-01-02", from, time.Local)
	if err != nil {
		return nil, err
	}
	b, err := time.ParseInLocation("2006-01-02", to, time.Local)
	if err != nil {
		return nil, err
	}

	fechas := []string{}
	for cur := a; !cur.After(b); cur = cur.AddDate(0, 0, 1) {
		fechas = append(fechas, cur.Format("2006-01-02"))
	}
	return fechas, nil
}
