package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/pkg/clock"
	"venue-boxoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type groupEntry struct {
	group    *booking.Group
	lastSeen time.Time
}

// GroupStore keeps booking groups in process memory and evicts idle ones.
type GroupStore struct {
	mu     sync.Mutex
	groups map[uuid.UUID]*groupEntry
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewGroupStore(ttl time.Duration, clk clock.Clock, logger *slog.Logger) *GroupStore {
	return &GroupStore{
		groups: make(map[uuid.UUID]*groupEntry),
		ttl:    ttl,
		clock:  clk,
		logger: logger,
	}
}

func (s *GroupStore) Put(g *booking.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[g.ID()] = &groupEntry{group: g, lastSeen: s.clock.Now()}
}

func (s *GroupStore) Get(id uuid.UUID) (*booking.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.groups[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.clock.Now()
	return e.group, true
}

func (s *GroupStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.groups)
}

// Sweep removes groups idle for longer than the TTL and reports how many it removed.
func (s *GroupStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.clock.Now().Add(-s.ttl)
	removed := 0
	for id, e := range s.groups {
		if e.lastSeen.Before(cutoff) {
			delete(s.groups, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("Evicted idle booking groups", "count", removed, "remaining", len(s.groups))
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (s *GroupStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

var _ shared.GroupStore = (*GroupStore)(nil)
