package horario

import (
	"fmt"
	"strings"

	"github.com/horas-centros/backend/internal/domain"
)

// TotalForRange sums all item hours and rounds once at the end.
func TotalForRange(items []domain.ScheduleItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Horas
	}
	return Round2(sum)
}

// TotalsByCenter groups item hours by center, in the canonical order of the
// center registry. Items of inactive centers are dropped. A centroId missing
// from the registry keeps its raw id as the display name and is appended
// after the known centers, in input order.
func TotalsByCenter(items []domain.ScheduleItem, centers []domain.Centro) []domain.TotalRow {
	inactive := make(map[string]bool)
	known := make(map[string]bool, len(centers))
	for _, c := range centers {
		known[c.CentroID] = true
		if !c.Activo {
			inactive[c.CentroID] = true
		}
	}

	sums := make(map[string]float64)
	seen := make(map[string]bool)
	extras := []string{}
	for _, it := range items {
		if inactive[it.CentroID] {
			continue
		}
		sums[it.CentroID] += it.Horas
		if !seen[it.CentroID] {
			seen[it.CentroID] = true
			if !known[it.CentroID] {
				extras = append(extras, it.CentroID)
			}
		}
	}

	rows := make([]domain.TotalRow, 0, len(sums))
	for _, c := range centers {
		if seen[c.CentroID] {
			rows = append(rows, domain.TotalRow{Centro: c.Nombre, Horas: Round2(sums[c.CentroID])})
		}
	}
	for _, id := range extras {
		rows = append(rows, domain.TotalRow{Centro: id, Horas: Round2(sums[id])})
	}
	return rows
}

// CSV renders per-center rows as the export artifact: a "Centro,Horas"
// header, the name always quoted with embedded quotes doubled, the hours as a
// plain decimal.
func CSV(rows []domain.TotalRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "Centro,Horas")
	for _, row := range rows {
		nombre := `"` + strings.ReplaceAll(row.Centro, `"`, `""`) + `"`
		lines = append(lines, nombre+","+FormatHours(row.Horas))
	}
	return strings.Join(lines, "\n")
}

// CSVFileName is the conventional name of the export artifact.
func CSVFileName(year int32) string {
	return fmt.Sprintf("horas_por_centro_%d.csv", year)
}
