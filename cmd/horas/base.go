package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/horas-centros/backend/internal/domain"
	"github.com/horas-centros/backend/internal/horario"
)

func newBaseCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base",
		Short: "Muestra la base semanal por centro",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.loadAll(cmd.Context()); err != nil {
				return err
			}
			renderBase(s)
			return nil
		},
	}

	cmd.AddCommand(newBaseSetCmd(s))
	return cmd
}

func newBaseSetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "set <centroId> <dow> <horas>",
		Short: "Guarda las horas base de un centro para un día de la semana",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := s.loadAll(ctx); err != nil {
				return err
			}

			dow, err := strconv.Atoi(args[1])
			if err != nil || dow < 0 || dow > 6 {
				return fmt.Errorf("día de la semana inválido: %q (usa 0-6)", args[1])
			}

			row := domain.BaseRow{
				CentroID: args[0],
				Dow:      int32(dow),
				Horas:    horario.ParseHours(args[2]),
			}
			if err := s.api.SaveBase(ctx, []domain.BaseRow{row}); err != nil {
				return err
			}

			// the base table changed, so the whole snapshot is stale
			if err := s.loadAll(ctx); err != nil {
				return err
			}

			fmt.Println("Base guardada.")
			renderBase(s)
			fmt.Printf("\nTotal del rango: %s h\n", horario.FormatHours(s.totals.Total))
			return nil
		},
	}
}

func renderBase(s *session) {
	fmt.Printf("Año %d · rango %s → %s\n\n", s.config.Year, s.config.Range.Start, s.config.Range.End)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "Centro")
	for _, d := range s.config.Dow {
		fmt.Fprintf(w, "\t%s", d.Label)
	}
	fmt.Fprintln(w)

	for _, c := range s.activeCenters() {
		fmt.Fprint(w, c.Nombre)
		for _, d := range s.config.Dow {
			horas := 0.0
			if byDow, ok := s.config.Base[c.CentroID]; ok {
				horas = byDow[d.Dow]
			}
			fmt.Fprintf(w, "\t%s", horario.FormatHours(horas))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
