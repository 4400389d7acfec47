package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/horas-centros/backend/internal/config"
	"github.com/horas-centros/backend/internal/repository"
)

type Handler struct {
	validate     *validator.Validate
	config       *config.Config
	repository   *repository.Repository
	translator   ut.Translator
	eventChannel *amqp.Channel

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, eventCh *amqp.Channel) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:     validate,
		config:       cfg,
		repository:   repo,
		translator:   trans,
		eventChannel: eventCh,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Get("/config", h.GetConfig)
		r.Get("/schedule", h.GetSchedule)

		r.Route("/totals", func(r chi.Router) {
			r.Get("/", h.GetTotals)
			r.Get("/csv", h.ExportTotalsCSV)
		})

		r.Post("/base", h.SaveBase)

		r.Route("/overrides", func(r chi.Router) {
			r.Post("/", h.SaveOverride)
			r.Delete("/", h.DeleteOverride)
		})
	})
}
