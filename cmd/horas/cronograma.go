package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/locales/es_CO"
	"github.com/spf13/cobra"

	"github.com/horas-centros/backend/internal/domain"
	"github.com/horas-centros/backend/internal/horario"
)

var weekdayLocale = es_CO.New()

type itemKey struct {
	fecha    string
	centroID string
}

func newCronogramaCmd(s *session) *cobra.Command {
	var (
		mes    string
		centro string
	)

	cmd := &cobra.Command{
		Use:   "cronograma",
		Short: "Muestra el cronograma de un mes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.loadAll(cmd.Context()); err != nil {
				return err
			}

			months, err := horario.MonthBuckets(s.config.Range.Start, s.config.Range.End)
			if err != nil {
				return err
			}
			if len(months) == 0 {
				fmt.Println("Sin rango de meses.")
				return nil
			}
			if mes == "" {
				mes = months[0]
			}

			return renderCronograma(s, mes, centro)
		},
	}

	cmd.Flags().StringVar(&mes, "mes", "", "mes a mostrar (YYYY-MM; por defecto el primero del rango)")
	cmd.Flags().StringVar(&centro, "centro", "", "centroId a filtrar (por defecto todos)")
	return cmd
}

func renderCronograma(s *session, mes, centro string) error {
	list := []domain.ScheduleItem{}
	for _, it := range s.schedule {
		if !strings.HasPrefix(it.Fecha, mes) {
			continue
		}
		if centro != "" && it.CentroID != centro {
			continue
		}
		list = append(list, it)
	}

	var cols []domain.Centro
	if centro != "" {
		cols = []domain.Centro{{CentroID: centro, Nombre: s.centerName(centro)}}
	} else {
		cols = s.activeCenters()
	}

	idx := make(map[itemKey]domain.ScheduleItem, len(list))
	fechasSet := make(map[string]bool)
	for _, it := range list {
		idx[itemKey{fecha: it.Fecha, centroID: it.CentroID}] = it
		fechasSet[it.Fecha] = true
	}
	fechas := make([]string, 0, len(fechasSet))
	for fecha := range fechasSet {
		fechas = append(fechas, fecha)
	}
	sort.Strings(fechas)

	fmt.Printf("Total %s: %s h\n\n", mes, horario.FormatHours(horario.TotalForRange(list)))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "Fecha")
	for _, c := range cols {
		fmt.Fprintf(w, "\t%s", c.Nombre)
	}
	fmt.Fprintln(w)

	for _, fecha := range fechas {
		dia, err := horario.WeekdayName(fecha, weekdayLocale)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s · %s", fecha, dia)

		for _, c := range cols {
			it, ok := idx[itemKey{fecha: fecha, centroID: c.CentroID}]
			if !ok {
				fmt.Fprint(w, "\t0")
				continue
			}
			cell := horario.FormatHours(it.Horas)
			// tag non-base sources, same cue as the pill in the old UI
			if it.Fuente != domain.SourceBase && it.Horas != 0 {
				cell += " [" + it.Fuente + "]"
			}
			fmt.Fprintf(w, "\t%s", cell)
		}
		fmt.Fprintln(w)
	}
	if len(fechas) == 0 {
		fmt.Fprintln(w, "Sin datos")
	}
	return w.Flush()
}
