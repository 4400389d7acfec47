// Package notifier turns schedule-change events into summary mails. It sits
// behind the schedule_events queue: the API publishes a change, the notifier
// recomputes the totals from the store and mails them with the CSV attached.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/wneessen/go-mail"

	"github.com/horas-centros/backend/internal/config"
	"github.com/horas-centros/backend/internal/domain"
	"github.com/horas-centros/backend/internal/horario"
	"github.com/horas-centros/backend/internal/repository"
)

const cooldownKey = "horas:notify:cooldown"

type Notifier struct {
	cfg         *config.Config
	repository  *repository.Repository
	mailClient  *mail.Client
	redisClient *redis.Client
}

func New(cfg *config.Config, repo *repository.Repository, mailClient *mail.Client, rdb *redis.Client) *Notifier {
	return &Notifier{
		cfg:         cfg,
		repository:  repo,
		mailClient:  mailClient,
		redisClient: rdb,
	}
}

// HandleDelivery processes one change event. Bursts of mutations collapse
// into a single mail per cooldown window: the first event takes the redis
// key, the rest are acknowledged silently.
func (n *Notifier) HandleDelivery(ctx context.Context, body []byte) error {
	var change domain.ScheduleChange
	if err := json.Unmarshal(body, &change); err != nil {
		return fmt.Errorf("evento de cambio inválido: %w", err)
	}

	cooldown := time.Duration(n.cfg.Redis.NotifyCooldown) * time.Second
	ok, err := n.redisClient.SetNX(ctx, cooldownKey, change.At.Format(time.RFC3339), cooldown).Result()
	if err != nil {
		return err
	}
	if !ok {
		slog.Info("cambio agrupado dentro de la ventana de espera", "action", change.Action)
		return nil
	}

	totals, err := n.currentTotals()
	if err != nil {
		return err
	}

	msg, err := n.buildMessage(change, totals)
	if err != nil {
		return err
	}

	return n.mailClient.DialAndSend(msg)
}

// currentTotals recomputes the planner-range totals from scratch, the same
// way the API does on every totals query.
func (n *Notifier) currentTotals() (*domain.Totals, error) {
	from := n.cfg.Planner.RangeStart
	to := n.cfg.Planner.RangeEnd

	centers, err := n.repository.GetCentros()
	if err != nil {
		return nil, err
	}
	base, err := n.repository.GetBaseTable()
	if err != nil {
		return nil, err
	}
	calendar, err := n.repository.GetCalendarDays(from, to)
	if err != nil {
		return nil, err
	}
	overrides, err := n.repository.GetOverrides(from, to)
	if err != nil {
		return nil, err
	}

	items, err := horario.Resolve(horario.Snapshot{
		Centers:   centers,
		Base:      base,
		Calendar:  calendar,
		Overrides: overrides,
	}, from, to, "")
	if err != nil {
		return nil, err
	}

	return &domain.Totals{
		Total: horario.TotalForRange(items),
		Rows:  horario.TotalsByCenter(items, centers),
	}, nil
}

func (n *Notifier) buildMessage(change domain.ScheduleChange, totals *domain.Totals) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.Email.From); err != nil {
		return nil, err
	}
	if err := msg.To(n.cfg.Email.To...); err != nil {
		return nil, err
	}
	msg.Subject(fmt.Sprintf("Horas por centro %d: cronograma actualizado", n.cfg.Planner.Year))
	msg.SetBodyString(mail.TypeTextPlain, n.renderBody(change, totals))

	csv := horario.CSV(totals.Rows)
	if err := msg.AttachReader(horario.CSVFileName(n.cfg.Planner.Year), bytes.NewReader([]byte(csv))); err != nil {
		return nil, err
	}

	return msg, nil
}

func (n *Notifier) renderBody(change domain.ScheduleChange, totals *domain.Totals) string {
	var b strings.Builder

	switch change.Action {
	case domain.ChangeSaveBase:
		b.WriteString("Se guardó la base semanal.\n")
	case domain.ChangeSaveOverride:
		fmt.Fprintf(&b, "Se guardó un ajuste para %s (centro %s).\n", change.Fecha, change.CentroID)
	case domain.ChangeDeleteOverride:
		fmt.Fprintf(&b, "Se eliminó el ajuste de %s (centro %s).\n", change.Fecha, change.CentroID)
	default:
		fmt.Fprintf(&b, "Cambio en el cronograma (%s).\n", change.Action)
	}

	fmt.Fprintf(&b, "\nRango: %s → %s\n", n.cfg.Planner.RangeStart, n.cfg.Planner.RangeEnd)
	fmt.Fprintf(&b, "Total del rango: %s h\n\n", horario.FormatHours(totals.Total))
	for _, row := range totals.Rows {
		fmt.Fprintf(&b, "  %s: %s h\n", row.Centro, horario.FormatHours(row.Horas))
	}
	b.WriteString("\nSe adjunta el CSV de horas por centro.\n")

	return b.String()
}

// Run consumes deliveries until ctx is cancelled. Failed events are nacked
// without requeue; the next mutation publishes a fresh one anyway.
func (n *Notifier) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, open := <-deliveries:
			if !open {
				return
			}
			if err := n.HandleDelivery(ctx, d.Body); err != nil {
				slog.Error("no se pudo procesar el evento", "error", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}
