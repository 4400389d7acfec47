// Command horas is the terminal front end of the horas-centros API. Each
// subcommand maps to one of the planner views: the weekly base grid, the
// month-by-month cronograma, the override form and the totals with their CSV
// export. State is loaded in order (config, then schedule and totals over the
// config range) and fully re-fetched after every mutation; the API is the
// only source of truth and nothing is cached between commands.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/horas-centros/backend/internal/client"
	"github.com/horas-centros/backend/internal/domain"
)

// session is the explicit in-memory snapshot the commands render from.
type session struct {
	api      *client.Client
	config   *domain.Config
	schedule []domain.ScheduleItem
	totals   *domain.Totals
}

// loadAll performs the sequential startup load. The schedule and totals
// queries depend on the range the config returns, so the calls are not raced.
func (s *session) loadAll(ctx context.Context) error {
	cfg, err := s.api.Config(ctx)
	if err != nil {
		return fmt.Errorf("no se pudo cargar la configuración del API: %w", err)
	}
	s.config = cfg

	items, err := s.api.Schedule(ctx, cfg.Range.Start, cfg.Range.End, "")
	if err != nil {
		return fmt.Errorf("no se pudo cargar el cronograma: %w", err)
	}
	s.schedule = items

	totals, err := s.api.Totals(ctx, cfg.Range.Start, cfg.Range.End)
	if err != nil {
		return fmt.Errorf("no se pudieron cargar los totales: %w", err)
	}
	s.totals = totals

	return nil
}

// refetch reloads schedule and totals after a mutation. The previous
// snapshot is only replaced when every fetch succeeds.
func (s *session) refetch(ctx context.Context) error {
	items, err := s.api.Schedule(ctx, s.config.Range.Start, s.config.Range.End, "")
	if err != nil {
		return fmt.Errorf("no se pudo recargar el cronograma: %w", err)
	}
	totals, err := s.api.Totals(ctx, s.config.Range.Start, s.config.Range.End)
	if err != nil {
		return fmt.Errorf("no se pudieron recargar los totales: %w", err)
	}

	s.schedule = items
	s.totals = totals
	return nil
}

func (s *session) activeCenters() []domain.Centro {
	activos := []domain.Centro{}
	for _, c := range s.config.Centers {
		if c.Activo {
			activos = append(activos, c)
		}
	}
	return activos
}

func (s *session) centerName(centroID string) string {
	for _, c := range s.config.Centers {
		if c.CentroID == centroID {
			return c.Nombre
		}
	}
	return centroID
}

func defaultAPIBase() string {
	if v := os.Getenv("HORAS_API"); v != "" {
		return v
	}
	return "http://localhost:3000"
}

func main() {
	var (
		apiBase  string
		timeoutS int
	)

	s := &session{}

	root := &cobra.Command{
		Use:           "horas",
		Short:         "Planificador de horas por centro",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s.api = client.New(apiBase, time.Duration(timeoutS)*time.Second)
		},
	}

	root.PersistentFlags().StringVar(&apiBase, "api", defaultAPIBase(), "URL base del API (o variable HORAS_API)")
	root.PersistentFlags().IntVar(&timeoutS, "timeout", 15, "timeout de las llamadas al API, en segundos")

	root.AddCommand(newBaseCmd(s))
	root.AddCommand(newCronogramaCmd(s))
	root.AddCommand(newAjusteCmd(s))
	root.AddCommand(newTotalesCmd(s))
	root.AddCommand(newExportarCmd(s))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
