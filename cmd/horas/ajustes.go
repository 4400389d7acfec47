package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/horas-centros/backend/internal/domain"
	"github.com/horas-centros/backend/internal/horario"
)

func validFecha(fecha string) error {
	if _, err := time.ParseInLocation("2006-01-02", fecha, time.Local); err != nil {
		return fmt.Errorf("fecha inválida: %q (usa YYYY-MM-DD)", fecha)
	}
	return nil
}

func newAjusteCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ajuste",
		Short: "Crea, actualiza o elimina ajustes por fecha y centro",
	}

	var motivo string
	guardar := &cobra.Command{
		Use:   "guardar <fecha> <centroId> <horas>",
		Short: "Guarda un ajuste; gana sobre base, festivo y cierre",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := validFecha(args[0]); err != nil {
				return err
			}
			if err := s.loadAll(ctx); err != nil {
				return err
			}

			ov := domain.Override{
				Fecha:    args[0],
				CentroID: args[1],
				Horas:    horario.ParseHours(args[2]),
				Motivo:   motivo,
			}
			if err := s.api.SaveOverride(ctx, ov); err != nil {
				return err
			}
			if err := s.refetch(ctx); err != nil {
				return err
			}

			fmt.Printf("Ajuste guardado: %s · %s · %s h\n", ov.Fecha, s.centerName(ov.CentroID), horario.FormatHours(ov.Horas))
			fmt.Printf("Total del rango: %s h\n", horario.FormatHours(s.totals.Total))
			return nil
		},
	}
	guardar.Flags().StringVar(&motivo, "motivo", "", "motivo del ajuste (opcional)")

	eliminar := &cobra.Command{
		Use:   "eliminar <fecha> <centroId>",
		Short: "Elimina el ajuste de una fecha y centro",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := validFecha(args[0]); err != nil {
				return err
			}
			if err := s.loadAll(ctx); err != nil {
				return err
			}

			if err := s.api.DeleteOverride(ctx, args[0], args[1]); err != nil {
				return err
			}
			if err := s.refetch(ctx); err != nil {
				return err
			}

			fmt.Printf("Ajuste eliminado: %s · %s\n", args[0], s.centerName(args[1]))
			fmt.Printf("Total del rango: %s h\n", horario.FormatHours(s.totals.Total))
			return nil
		},
	}

	cmd.AddCommand(guardar)
	cmd.AddCommand(eliminar)
	return cmd
}
