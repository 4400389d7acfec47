package horario

import (
	"strings"
	"testing"

	"github.com/horas-centros/backend/internal/domain"
)

func TestTotalForRange(t *testing.T) {
	items := []domain.ScheduleItem{
		{CentroID: "A", Horas: 0.1},
		{CentroID: "A", Horas: 0.2},
		{CentroID: "B", Horas: 1.5},
	}
	if got := TotalForRange(items); got != 1.8 {
		t.Fatalf("TotalForRange = %v, want 1.8", got)
	}
	if got := TotalForRange(nil); got != 0 {
		t.Fatalf("TotalForRange(nil) = %v, want 0", got)
	}
}

func TestTotalsByCenterRegistryOrder(t *testing.T) {
	items := []domain.ScheduleItem{
		{CentroID: "A", Horas: 2},
		{CentroID: "A", Horas: 3},
		{CentroID: "B", Horas: 1.5},
	}
	centers := []domain.Centro{
		{CentroID: "B", Nombre: "B name", Activo: true},
		{CentroID: "A", Nombre: "A name", Activo: true},
	}

	rows := TotalsByCenter(items, centers)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Centro != "B name" || rows[0].Horas != 1.5 {
		t.Fatalf("rows[0] = %+v, want (B name, 1.5)", rows[0])
	}
	if rows[1].Centro != "A name" || rows[1].Horas != 5 {
		t.Fatalf("rows[1] = %+v, want (A name, 5)", rows[1])
	}
}

func TestTotalsByCenterUnknownIDFallsBack(t *testing.T) {
	items := []domain.ScheduleItem{
		{CentroID: "A", Horas: 2},
		{CentroID: "ghost", Horas: 1},
	}
	centers := []domain.Centro{
		{CentroID: "A", Nombre: "A name", Activo: true},
	}

	rows := TotalsByCenter(items, centers)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].Centro != "ghost" || rows[1].Horas != 1 {
		t.Fatalf("rows[1] = %+v, want the raw id as name", rows[1])
	}
}

func TestTotalsByCenterExcludesInactive(t *testing.T) {
	items := []domain.ScheduleItem{
		{CentroID: "A", Horas: 2},
		{CentroID: "B", Horas: 9},
	}
	centers := []domain.Centro{
		{CentroID: "A", Nombre: "A name", Activo: true},
		{CentroID: "B", Nombre: "B name", Activo: false},
	}

	rows := TotalsByCenter(items, centers)
	if len(rows) != 1 || rows[0].Centro != "A name" {
		t.Fatalf("rows = %+v, want only the active center", rows)
	}
}

func TestCSV(t *testing.T) {
	rows := []domain.TotalRow{
		{Centro: `Centro "X"`, Horas: 2.5},
	}
	got := CSV(rows)
	want := "Centro,Horas\n" + `"Centro ""X""",2.5`
	if got != want {
		t.Fatalf("CSV = %q, want %q", got, want)
	}
}

func TestCSVMultipleRows(t *testing.T) {
	rows := []domain.TotalRow{
		{Centro: "Centro Norte", Horas: 12},
		{Centro: "Centro Sur", Horas: 7.5},
	}
	got := CSV(rows)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != `"Centro Norte",12` || lines[2] != `"Centro Sur",7.5` {
		t.Fatalf("unexpected lines: %v", lines[1:])
	}
}

func TestCSVFileName(t *testing.T) {
	if got := CSVFileName(2026); got != "horas_por_centro_2026.csv" {
		t.Fatalf("CSVFileName = %q", got)
	}
}
