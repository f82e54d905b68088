//go:build unit

package venue_test

import (
	"testing"

	"venue-boxoffice/internal/domain/venue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("exact name", func(t *testing.T) {
		v, err := venue.Lookup("Main Hall")
		require.NoError(t, err)
		assert.Equal(t, venue.CategoryMainHall, v.Category)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		v, err := venue.Lookup("  dickens den ")
		require.NoError(t, err)
		assert.Equal(t, venue.DickensDen, v.Name)
		assert.True(t, v.IsRoom())
	})

	t.Run("unknown venue", func(t *testing.T) {
		_, err := venue.Lookup("Basement")
		require.ErrorIs(t, err, venue.ErrUnknownVenue)
	})
}

func TestRooms(t *testing.T) {
	rooms := venue.Rooms()
	require.Len(t, rooms, 6)
	for _, r := range rooms {
		assert.True(t, venue.IsRoom(r.Name), r.Name)
	}
	assert.False(t, venue.IsRoom(venue.MainHall))
	assert.False(t, venue.IsRoom("nowhere"))
}

func TestAllReturnsCopy(t *testing.T) {
	all := venue.All()
	all[0].Name = "changed"
	assert.Equal(t, venue.EntireVenue, venue.All()[0].Name)
}
