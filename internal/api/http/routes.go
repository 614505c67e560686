package httpapi

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/i474232898/weather-card/internal/card"
	"github.com/i474232898/weather-card/internal/store"
	"github.com/i474232898/weather-card/internal/views"
	"github.com/i474232898/weather-card/internal/weather"
)

const sessionCookie = "weather_sid"

var validate = validator.New()

// Handler serves the lookup page and the JSON API.
type Handler struct {
	service  *weather.Service
	sessions *store.MemoryStore
	logger   *slog.Logger
}

func NewHandler(service *weather.Service, sessions *store.MemoryStore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, sessions: sessions, logger: logger}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.page)
	app.Post("/", h.submit)

	v1 := app.Group("/api/v1")
	v1.Get("/weather", h.lookup)
	v1.Get("/card", h.currentCard)
}

// lookupQuery holds the place name typed by the user. Blank input is the
// pipeline's concern; only the upper bound is checked here.
type lookupQuery struct {
	City string `validate:"max=200"`
}

func parseLookup(raw string) (lookupQuery, error) {
	q := lookupQuery{City: strings.TrimSpace(raw)}
	if err := validate.Struct(q); err != nil {
		return q, errors.New("place name is too long")
	}
	return q, nil
}

func (h *Handler) page(c *fiber.Ctx) error {
	sessCard := h.sessions.Card(h.sessionID(c))
	return renderPage(c, &views.PageData{Card: sessCard.View()})
}

func (h *Handler) submit(c *fiber.Ctx) error {
	q, err := parseLookup(c.FormValue("city"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sessCard := h.sessions.Card(h.sessionID(c))
	sub := sessCard.Begin()
	out := h.service.Submit(c.UserContext(), q.City, sub)
	if !sub.Applied() {
		h.logger.Debug("lookup superseded by newer submission",
			"generation", sub.Generation(), "state", out.State.String())
	}

	return renderPage(c, &views.PageData{Query: q.City, Card: sessCard.View()})
}

func (h *Handler) lookup(c *fiber.Ctx) error {
	q, err := parseLookup(c.Query("city"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// API lookups render into a throwaway card and never touch the session.
	scratch := card.New(false)
	out := h.service.Submit(c.UserContext(), q.City, scratch.Begin())
	if out.Err != nil {
		return fiber.NewError(statusFor(out.Err), weather.UserMessage(out.Err))
	}

	return c.JSON(fiber.Map{
		"location": out.Location,
		"weather":  out.Weather,
		"view":     scratch.View(),
	})
}

func (h *Handler) currentCard(c *fiber.Ctx) error {
	sessCard, err := h.sessions.Lookup(c.Cookies(sessionCookie))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load card")
	}

	view := sessCard.View()
	if view.Empty() {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(fiber.Map{
		"view":      view,
		"updatedAt": sessCard.UpdatedAt(),
	})
}

// sessionID returns the caller's session id, issuing a new cookie when the
// request has none or an invalid one.
func (h *Handler) sessionID(c *fiber.Ctx) string {
	if id, err := uuid.Parse(c.Cookies(sessionCookie)); err == nil {
		return id.String()
	}

	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return id
}

func renderPage(c *fiber.Ctx, data *views.PageData) error {
	c.Type("html", "utf-8")
	return views.RenderPage(c, data)
}

// statusFor maps lookup error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, weather.ErrEmptyInput):
		return fiber.StatusBadRequest
	case errors.Is(err, weather.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, weather.ErrInvalidPlace):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, weather.ErrService):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
