// Package search holds the current filtered view of a card catalog and
// notifies subscribers whenever it is recomputed.
package search

import (
	"sync"

	"go.uber.org/zap"

	"github.com/stefanclaw/cardkit/internal/catalog"
)

// View is a read-only snapshot of the filtered catalog.
type View struct {
	Term     string
	Cards    []catalog.Card
	Computed bool // false until the first Filter call
}

// Empty reports whether a computed view has no matches. A view that has not
// been computed yet is not empty.
func (v View) Empty() bool {
	return v.Computed && len(v.Cards) == 0
}

// Len returns the number of matching cards.
func (v View) Len() int {
	return len(v.Cards)
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger used for recompute events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// Searcher filters a fixed catalog and publishes the result to subscribers.
// It is safe for concurrent use.
type Searcher struct {
	catalog catalog.Catalog
	logger  *zap.Logger

	mu     sync.Mutex
	view   View
	nextID int
	subs   map[int]func(View)
	order  []int
}

// New creates a Searcher over cat. The initial view is not computed.
func New(cat catalog.Catalog, opts ...Option) *Searcher {
	s := &Searcher{
		catalog: cat,
		logger:  zap.NewNop(),
		subs:    make(map[int]func(View)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the catalog being searched.
func (s *Searcher) Catalog() catalog.Catalog {
	return s.catalog
}

// Filter recomputes the view for term from the full catalog, replaces the
// current view and notifies subscribers in subscription order.
func (s *Searcher) Filter(term string) View {
	v := View{
		Term:     term,
		Cards:    s.catalog.Filter(term),
		Computed: true,
	}

	s.mu.Lock()
	s.view = v
	fns := make([]func(View), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	s.logger.Debug("filtered catalog",
		zap.String("term", term),
		zap.Int("matches", len(v.Cards)),
		zap.Int("catalog", s.catalog.Len()),
		zap.Int("subscribers", len(fns)))

	for _, fn := range fns {
		fn(v.clone())
	}
	return v.clone()
}

// Reset shows the full catalog.
func (s *Searcher) Reset() View {
	return s.Filter("")
}

// View returns the current view.
func (s *Searcher) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}

// Subscribe registers fn to be called with every new view. The returned
// cancel func removes the subscription and may be called more than once.
func (s *Searcher) Subscribe(fn func(View)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Searcher) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (v View) clone() View {
	if v.Cards != nil {
		cards := make([]catalog.Card, len(v.Cards))
		copy(cards, v.Cards)
		v.Cards = cards
	}
	return v
}
