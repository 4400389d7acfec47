package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/horas-centros/backend/internal/domain"
)

const eventsQueue = "schedule_events"

// publishScheduleChange notifies consumers after a successful mutation. The
// mutation is already committed at this point, so a publish failure is only
// logged; the store stays the source of truth either way.
func (h *Handler) publishScheduleChange(action, fecha, centroID string) {
	change := domain.ScheduleChange{
		Action:   action,
		Fecha:    fecha,
		CentroID: centroID,
		At:       time.Now(),
	}

	body, err := json.Marshal(change)
	if err != nil {
		slog.Error("no se pudo serializar el evento de cambio", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.eventChannel.PublishWithContext(
		ctx,
		"",
		eventsQueue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("no se pudo publicar el evento de cambio", "action", action, "error", err)
	}
}
