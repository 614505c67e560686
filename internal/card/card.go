// Package card holds the display surface a lookup renders into.
package card

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/i474232898/weather-card/internal/weather"
)

// Card is one display surface. It shows at most one view, success or error.
//
// Every submission takes a generation number from Begin. When discardStale is
// set, a render from a submission older than the newest one started is
// dropped, so overlapping lookups cannot leave an outdated result on screen.
// Otherwise the last render to arrive wins.
type Card struct {
	gen          atomic.Uint64
	discardStale bool

	mu        sync.RWMutex
	view      weather.View
	updatedAt time.Time
}

// New creates an empty card.
func New(discardStale bool) *Card {
	return &Card{discardStale: discardStale}
}

// Begin starts a submission and returns the renderer it must write to.
func (c *Card) Begin() *Submission {
	return &Submission{card: c, gen: c.gen.Inc()}
}

// View returns the view currently displayed.
func (c *Card) View() weather.View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// UpdatedAt is the time of the last applied render, zero if none.
func (c *Card) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

func (c *Card) show(gen uint64, v weather.View) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.discardStale && gen < c.gen.Load() {
		return false
	}
	c.view = v
	c.updatedAt = time.Now().UTC()
	return true
}

// Submission is a weather.Renderer bound to one generation of a Card.
type Submission struct {
	card *Card
	gen  uint64

	applied bool
}

var _ weather.Renderer = (*Submission)(nil)

// Generation returns the submission's generation number.
func (s *Submission) Generation() uint64 {
	return s.gen
}

// Applied reports whether the submission's render reached the card.
func (s *Submission) Applied() bool {
	return s.applied
}

func (s *Submission) RenderSuccess(loc weather.ResolvedLocation, cw weather.CurrentWeather) {
	s.applied = s.card.show(s.gen, weather.SuccessView(loc, cw))
}

func (s *Submission) RenderError(message string) {
	s.applied = s.card.show(s.gen, weather.ErrorView(message))
}
