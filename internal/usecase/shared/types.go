package shared

import (
	"venue-boxoffice/internal/domain/booking"

	"github.com/google/uuid"
)

// GroupStore holds booking groups between requests, including closed ones
// until they are evicted. Get counts as activity for idle eviction.
type GroupStore interface {
	Put(g *booking.Group)
	Get(id uuid.UUID) (*booking.Group, bool)
}
