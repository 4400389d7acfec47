package horario

import (
	"github.com/horas-centros/backend/internal/domain"
)

// Snapshot is everything resolution needs, taken as plain values. Resolve
// never mutates it and keeps no state between calls.
type Snapshot struct {
	Centers   []domain.Centro
	Base      domain.BaseTable
	Calendar  []domain.CalendarDay
	Overrides []domain.Override
}

type overrideKey struct {
	fecha    string
	centroID string
}

// Resolve produces the schedule items for every date in [from, to] and every
// active center (or just centroID when non-empty). Precedence per cell:
//
//  1. base table lookup by weekday, 0 when the pair is absent
//  2. a calendar day (holiday/closure) replaces it with its hours and tag
//  3. a user override replaces everything, even with an explicit zero
func Resolve(snap Snapshot, from, to, centroID string) ([]domain.ScheduleItem, error) {
	a, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	b, err := parseDate(to)
	if err != nil {
		return nil, err
	}
	if a.After(b) {
		return nil, ErrInvalidRange
	}

	calendar := make(map[string]domain.CalendarDay, len(snap.Calendar))
	for _, day := range snap.Calendar {
		calendar[day.Fecha] = day
	}

	// The store upserts by key, so duplicates should not happen; if they do,
	// the last one wins, same as replaying the upserts.
	overrides := make(map[overrideKey]domain.Override, len(snap.Overrides))
	for _, ov := range snap.Overrides {
		overrides[overrideKey{fecha: ov.Fecha, centroID: ov.CentroID}] = ov
	}

	items := []domain.ScheduleItem{}
	for cur := a; !cur.After(b); cur = cur.AddDate(0, 0, 1) {
		fecha := cur.Format(dateLayout)
		dow := int32(cur.Weekday())

		for _, c := range snap.Centers {
			if !c.Activo {
				continue
			}
			if centroID != "" && c.CentroID != centroID {
				continue
			}

			horas := 0.0
			fuente := domain.SourceBase
			if byDow, ok := snap.Base[c.CentroID]; ok {
				horas = byDow[dow]
			}
			if day, ok := calendar[fecha]; ok {
				horas = day.Horas
				fuente = day.Tipo
			}
			if ov, ok := overrides[overrideKey{fecha: fecha, centroID: c.CentroID}]; ok {
				horas = ov.Horas
				fuente = domain.SourceOverride
			}

			items = append(items, domain.ScheduleItem{
				Fecha:    fecha,
				CentroID: c.CentroID,
				Horas:    horas,
				Fuente:   fuente,
			})
		}
	}

	return items, nil
}
