package horario

import (
	"errors"
	"testing"

	"github.com/horas-centros/backend/internal/domain"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Centers: []domain.Centro{
			{CentroID: "A", Nombre: "Centro A", Activo: true},
		},
		Base: domain.BaseTable{
			"A": {0: 0, 3: 4},
		},
	}
}

func findItem(t *testing.T, items []domain.ScheduleItem, fecha, centroID string) domain.ScheduleItem {
	t.Helper()
	for _, it := range items {
		if it.Fecha == fecha && it.CentroID == centroID {
			return it
		}
	}
	t.Fatalf("no item for (%s, %s)", fecha, centroID)
	return domain.ScheduleItem{}
}

func TestResolveBaseWeek(t *testing.T) {
	items, err := Resolve(testSnapshot(), "2026-03-01", "2026-03-08", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	// 8 dates, one active center.
	if len(items) != 8 {
		t.Fatalf("got %d items, want 8", len(items))
	}

	sun := findItem(t, items, "2026-03-01", "A") // Sunday
	if sun.Horas != 0 || sun.Fuente != domain.SourceBase {
		t.Fatalf("Sunday resolved to (%v, %s), want (0, base)", sun.Horas, sun.Fuente)
	}
	wed := findItem(t, items, "2026-03-04", "A") // Wednesday
	if wed.Horas != 4 || wed.Fuente != domain.SourceBase {
		t.Fatalf("Wednesday resolved to (%v, %s), want (4, base)", wed.Horas, wed.Fuente)
	}
}

func TestResolveExplicitZeroOverride(t *testing.T) {
	snap := testSnapshot()
	snap.Overrides = []domain.Override{
		{Fecha: "2026-03-04", CentroID: "A", Horas: 0, Motivo: "cancelled"},
	}

	items, err := Resolve(snap, "2026-03-01", "2026-03-08", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	wed := findItem(t, items, "2026-03-04", "A")
	if wed.Horas != 0 || wed.Fuente != domain.SourceOverride {
		t.Fatalf("overridden Wednesday resolved to (%v, %s), want (0, override)", wed.Horas, wed.Fuente)
	}
	// The implicit-zero Sunday stays tagged base, distinct from the explicit zero.
	sun := findItem(t, items, "2026-03-01", "A")
	if sun.Fuente != domain.SourceBase {
		t.Fatalf("Sunday source = %s, want base", sun.Fuente)
	}
}

func TestResolveOverrideBeatsHoliday(t *testing.T) {
	snap := testSnapshot()
	snap.Calendar = []domain.CalendarDay{
		{Fecha: "2026-03-04", Tipo: domain.SourceHoliday},
	}

	items, err := Resolve(snap, "2026-03-01", "2026-03-08", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	wed := findItem(t, items, "2026-03-04", "A")
	if wed.Horas != 0 || wed.Fuente != domain.SourceHoliday {
		t.Fatalf("holiday resolved to (%v, %s), want (0, holiday)", wed.Horas, wed.Fuente)
	}

	snap.Overrides = []domain.Override{
		{Fecha: "2026-03-04", CentroID: "A", Horas: 3},
	}
	items, err = Resolve(snap, "2026-03-01", "2026-03-08", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	wed = findItem(t, items, "2026-03-04", "A")
	if wed.Horas != 3 || wed.Fuente != domain.SourceOverride {
		t.Fatalf("override over holiday resolved to (%v, %s), want (3, override)", wed.Horas, wed.Fuente)
	}
}

func TestResolveClosureTag(t *testing.T) {
	snap := testSnapshot()
	snap.Calendar = []domain.CalendarDay{
		{Fecha: "2026-03-04", Tipo: domain.SourceClosure},
	}

	items, err := Resolve(snap, "2026-03-04", "2026-03-04", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if items[0].Fuente != domain.SourceClosure {
		t.Fatalf("source = %s, want closure", items[0].Fuente)
	}
}

func TestResolveDuplicateOverrideLastWins(t *testing.T) {
	snap := testSnapshot()
	snap.Overrides = []domain.Override{
		{Fecha: "2026-03-04", CentroID: "A", Horas: 1},
		{Fecha: "2026-03-04", CentroID: "A", Horas: 2.5},
	}

	items, err := Resolve(snap, "2026-03-04", "2026-03-04", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if items[0].Horas != 2.5 {
		t.Fatalf("horas = %v, want 2.5 (last duplicate wins)", items[0].Horas)
	}
}

func TestResolveSkipsInactiveCenters(t *testing.T) {
	snap := testSnapshot()
	snap.Centers = append(snap.Centers, domain.Centro{CentroID: "B", Nombre: "Centro B", Activo: false})
	snap.Base["B"] = map[int32]float64{3: 8}

	items, err := Resolve(snap, "2026-03-04", "2026-03-04", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	for _, it := range items {
		if it.CentroID == "B" {
			t.Fatalf("inactive center B must not resolve")
		}
	}
}

func TestResolveCenterFilter(t *testing.T) {
	snap := testSnapshot()
	snap.Centers = append(snap.Centers, domain.Centro{CentroID: "B", Nombre: "Centro B", Activo: true})

	items, err := Resolve(snap, "2026-03-02", "2026-03-04", "B")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for _, it := range items {
		if it.CentroID != "B" {
			t.Fatalf("filter leaked center %s", it.CentroID)
		}
	}
}

func TestResolveNegativeOverridePassesThrough(t *testing.T) {
	snap := testSnapshot()
	snap.Overrides = []domain.Override{
		{Fecha: "2026-03-04", CentroID: "A", Horas: -2},
	}

	items, err := Resolve(snap, "2026-03-04", "2026-03-04", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	// Rejection belongs to the input boundary, not here.
	if items[0].Horas != -2 {
		t.Fatalf("horas = %v, want -2", items[0].Horas)
	}
}

func TestResolveInvertedRange(t *testing.T) {
	if _, err := Resolve(testSnapshot(), "2026-03-08", "2026-03-01", ""); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
