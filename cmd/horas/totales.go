package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/horas-centros/backend/internal/horario"
)

func newTotalesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "totales",
		Short: "Muestra el total del rango y las horas por centro",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.loadAll(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Rango %s → %s\n", s.config.Range.Start, s.config.Range.End)
			fmt.Printf("Total: %s h\n\n", horario.FormatHours(s.totals.Total))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Centro\tHoras")
			for _, row := range s.totals.Rows {
				fmt.Fprintf(w, "%s\t%s\n", row.Centro, horario.FormatHours(row.Horas))
			}
			return w.Flush()
		},
	}
}

func newExportarCmd(s *session) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta las horas por centro a CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.loadAll(cmd.Context()); err != nil {
				return err
			}

			path := out
			if path == "" {
				path = horario.CSVFileName(s.config.Year)
			}

			csv := horario.CSV(s.totals.Rows)
			if err := os.WriteFile(path, []byte(csv+"\n"), 0o644); err != nil {
				return fmt.Errorf("no se pudo escribir el archivo: %w", err)
			}

			fmt.Printf("CSV exportado a %s (%d centros)\n", path, len(s.totals.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "ruta del archivo de salida (por defecto horas_por_centro_<año>.csv)")
	return cmd
}
