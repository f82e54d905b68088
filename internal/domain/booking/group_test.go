//go:build unit

package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	mu     sync.Mutex
	saved  []booking.Request
	failAt int
	err    error
}

func (s *recordingSaver) Save(_ context.Context, req booking.Request) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil && len(s.saved) == s.failAt {
		return uuid.Nil, s.err
	}
	s.saved = append(s.saved, req)
	return uuid.New(), nil
}

func newGroup() *booking.Group {
	return booking.NewGroup(uuid.New(), time.Now())
}

func TestGroup_HasConflicts(t *testing.T) {
	t.Run("same venue same window conflicts", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		assert.True(t, g.HasConflicts())

		pairs := g.Conflicts()
		require.Len(t, pairs, 1)
		assert.Equal(t, 0, pairs[0].First)
		assert.Equal(t, 1, pairs[0].Second)
	})

	t.Run("different venue does not conflict", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		require.NoError(t, g.Add(builder.NewBookingBuilder().WithVenue("Small Hall").MustBuildDomain()))
		assert.False(t, g.HasConflicts())
	})

	t.Run("partial overlap conflicts", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().WithWindow("10:00", "12:00").MustBuildDomain()))
		require.NoError(t, g.Add(builder.NewBookingBuilder().WithWindow("11:00", "13:00").MustBuildDomain()))
		assert.True(t, g.HasConflicts())
	})

	t.Run("back to back does not conflict", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().WithWindow("10:00", "12:00").MustBuildDomain()))
		require.NoError(t, g.Add(builder.NewBookingBuilder().WithWindow("12:00", "13:00").MustBuildDomain()))
		assert.False(t, g.HasConflicts())
	})

	t.Run("every offending pair is reported", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.AddAll(
			builder.NewBookingBuilder().WithWindow("10:00", "14:00").MustBuildDomain(),
			builder.NewBookingBuilder().WithWindow("11:00", "12:00").MustBuildDomain(),
			builder.NewBookingBuilder().WithWindow("13:00", "15:00").MustBuildDomain(),
			builder.NewBookingBuilder().WithVenue("Small Hall").MustBuildDomain(),
		))

		pairs := g.Conflicts()
		require.Len(t, pairs, 2)
		assert.Equal(t, [2]int{0, 1}, [2]int{pairs[0].First, pairs[0].Second})
		assert.Equal(t, [2]int{0, 2}, [2]int{pairs[1].First, pairs[1].Second})
	})
}

func TestGroup_Add(t *testing.T) {
	t.Run("rejects invalid request", func(t *testing.T) {
		g := newGroup()
		err := g.Add(booking.Request{})
		require.ErrorIs(t, err, booking.ErrValidation)
		assert.Equal(t, 0, g.Len())
	})

	t.Run("add all is all or nothing", func(t *testing.T) {
		g := newGroup()
		err := g.AddAll(builder.NewBookingBuilder().MustBuildDomain(), booking.Request{})
		require.ErrorIs(t, err, booking.ErrValidation)
		assert.Equal(t, 0, g.Len())
	})

	t.Run("requests are returned as a copy", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		reqs := g.Requests()
		reqs[0] = booking.Request{}
		assert.Equal(t, "Main Hall", g.Requests()[0].Venue())
	})

	t.Run("remove amends a conflict", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		require.True(t, g.HasConflicts())

		require.NoError(t, g.Remove(1))
		assert.False(t, g.HasConflicts())
		assert.ErrorIs(t, g.Remove(5), booking.ErrNoSuchIndex)
	})
}

func TestGroup_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("saves in order and closes", func(t *testing.T) {
		g := newGroup()
		first := builder.NewBookingBuilder().WithWindow("09:00", "11:00").MustBuildDomain()
		second := builder.NewBookingBuilder().WithVenue("Dickens Den").MustBuildDomain()
		require.NoError(t, g.AddAll(first, second))

		saver := &recordingSaver{}
		ids, err := g.Commit(ctx, saver)
		require.NoError(t, err)

		require.Len(t, ids, 2)
		require.Len(t, saver.saved, 2)
		assert.Equal(t, first, saver.saved[0])
		assert.Equal(t, second, saver.saved[1])
		assert.Equal(t, booking.StateSubmitted, g.State())
		assert.Equal(t, 0, g.Len())
	})

	t.Run("conflict refuses without saving", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))

		saver := &recordingSaver{}
		ids, err := g.Commit(ctx, saver)
		require.Error(t, err)
		require.ErrorIs(t, err, booking.ErrConflict)

		var ce *booking.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Len(t, ce.Pairs, 1)
		assert.Nil(t, ids)
		assert.Empty(t, saver.saved)
		assert.Equal(t, booking.StateBuilding, g.State())
		assert.Equal(t, 2, g.Len())
	})

	t.Run("persistence failure keeps the group open", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.AddAll(
			builder.NewBookingBuilder().WithWindow("09:00", "10:00").MustBuildDomain(),
			builder.NewBookingBuilder().WithWindow("10:00", "11:00").MustBuildDomain(),
		))

		dbErr := errors.New("connection reset")
		saver := &recordingSaver{failAt: 1, err: dbErr}
		_, err := g.Commit(ctx, saver)
		require.ErrorIs(t, err, booking.ErrPersistence)
		require.ErrorIs(t, err, dbErr)

		var pe *booking.PersistenceError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 1, pe.Index)
		assert.Equal(t, booking.StateBuilding, g.State())
		assert.Equal(t, 2, g.Len())

		saver.err = nil
		saver.saved = nil
		ids, err := g.Commit(ctx, saver)
		require.NoError(t, err)
		assert.Len(t, ids, 2)
	})

	t.Run("empty group", func(t *testing.T) {
		_, err := newGroup().Commit(ctx, &recordingSaver{})
		require.ErrorIs(t, err, booking.ErrEmptyGroup)
	})

	t.Run("committed group is never reopened", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		_, err := g.Commit(ctx, &recordingSaver{})
		require.NoError(t, err)

		assert.ErrorIs(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()), booking.ErrGroupClosed)
		_, err = g.Commit(ctx, &recordingSaver{})
		assert.ErrorIs(t, err, booking.ErrGroupClosed)
		assert.ErrorIs(t, g.Discard(), booking.ErrGroupClosed)
		assert.ErrorIs(t, g.Remove(0), booking.ErrGroupClosed)
	})

	t.Run("transaction failure keeps the group open", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))

		commitErr := errors.New("commit failed")
		tx := failingTx{saver: &recordingSaver{}, err: commitErr}
		_, err := g.CommitTx(ctx, tx)
		require.ErrorIs(t, err, booking.ErrPersistence)
		require.ErrorIs(t, err, commitErr)
		assert.Equal(t, booking.StateBuilding, g.State())
		assert.Equal(t, 1, g.Len())
	})
}

type failingTx struct {
	saver booking.Saver
	err   error
}

func (f failingTx) InTx(ctx context.Context, fn func(ctx context.Context, saver booking.Saver) error) error {
	if err := fn(ctx, f.saver); err != nil {
		return err
	}
	return f.err
}

func TestGroup_Discard(t *testing.T) {
	g := newGroup()
	require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
	require.NoError(t, g.Discard())

	assert.Equal(t, booking.StateDiscarded, g.State())
	assert.Equal(t, 0, g.Len())
	assert.ErrorIs(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()), booking.ErrGroupClosed)
}

func TestGroup_ConcurrentAdds(t *testing.T) {
	g := newGroup()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Add(builder.NewBookingBuilder().MustBuildDomain())
			_ = g.HasConflicts()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, g.Len())
}

func TestGroup_Snapshot(t *testing.T) {
	g := newGroup()
	require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
	require.NoError(t, g.Add(builder.NewBookingBuilder().WithWindow("19:00", "21:00").MustBuildDomain()))

	snap := g.Snapshot()
	assert.Equal(t, booking.StateBuilding, snap.State)
	require.Len(t, snap.Requests, 2)
	require.Len(t, snap.Conflicts, 1)
	assert.Equal(t, 0, snap.Conflicts[0].First)
	assert.Equal(t, 1, snap.Conflicts[0].Second)

	t.Run("conflict indices always refer to the returned requests", func(t *testing.T) {
		g := newGroup()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = g.Add(builder.NewBookingBuilder().MustBuildDomain())
			}()
		}
		for i := 0; i < 20; i++ {
			snap := g.Snapshot()
			for _, p := range snap.Conflicts {
				assert.Less(t, p.Second, len(snap.Requests))
			}
		}
		wg.Wait()
	})
}

func TestExpandSelections(t *testing.T) {
	sel := booking.Selections{
		"2025-05-03": {
			{Venue: "Small Hall", StartTime: "14:00", EndTime: "16:00"},
			{Venue: "Dickens Den", StartTime: "09:00", EndTime: "12:00", BookingType: "MORNING"},
		},
		"2025-05-01": {
			{Venue: "Main Hall", StartTime: "18:00", EndTime: "23:00"},
		},
	}

	reqs, err := booking.ExpandSelections(sel, "Ada Lovelace", "Analytical Evening", "theatre")
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.Equal(t, "Main Hall", reqs[0].Venue())
	assert.Equal(t, "Small Hall", reqs[1].Venue())
	assert.Equal(t, "Dickens Den", reqs[2].Venue())
	for _, r := range reqs {
		assert.Equal(t, "Ada Lovelace", r.ClientName())
		assert.Equal(t, "Analytical Evening", r.EventName())
		assert.Equal(t, "theatre", r.Configuration())
	}
	assert.True(t, reqs[2].HasBookingType())

	t.Run("invalid tuple fails everything", func(t *testing.T) {
		bad := booking.Selections{
			"2025-05-01": {{Venue: "Main Hall", StartTime: "18:00", EndTime: "17:00"}},
			"2025-05-02": {{Venue: "Main Hall", StartTime: "18:00", EndTime: "20:00"}},
		}
		g := newGroup()
		_, err := g.AddMultiDay(bad, "Ada", "Event", "")
		require.ErrorIs(t, err, booking.ErrValidation)
		assert.Equal(t, 0, g.Len())
	})

	t.Run("same day written twice is rejected", func(t *testing.T) {
		dup := booking.Selections{
			"2025-05-01":  {{Venue: "Main Hall", StartTime: "18:00", EndTime: "20:00"}},
			" 2025-05-01": {{Venue: "Small Hall", StartTime: "18:00", EndTime: "20:00"}},
		}
		for i := 0; i < 20; i++ {
			_, err := booking.ExpandSelections(dup, "Ada", "Event", "")
			require.ErrorIs(t, err, booking.ErrValidation)

			var ve *booking.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "selections", ve.Field)
		}
	})

	t.Run("expansion order is stable", func(t *testing.T) {
		first, err := booking.ExpandSelections(sel, "Ada", "Event", "")
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := booking.ExpandSelections(sel, "Ada", "Event", "")
			require.NoError(t, err)
			require.Len(t, again, len(first))
			for j := range first {
				assert.Equal(t, first[j].String(), again[j].String())
			}
		}
	})

	t.Run("empty selections", func(t *testing.T) {
		_, err := booking.ExpandSelections(booking.Selections{}, "Ada", "Event", "")
		require.ErrorIs(t, err, booking.ErrValidation)
	})

	t.Run("expanded requests run the same conflict check", func(t *testing.T) {
		g := newGroup()
		require.NoError(t, g.Add(builder.NewBookingBuilder().MustBuildDomain()))
		_, err := g.AddMultiDay(booking.Selections{
			"2025-05-01": {{Venue: "main hall", StartTime: "19:00", EndTime: "21:00"}},
		}, "Ada", "Event", "")
		require.NoError(t, err)
		assert.True(t, g.HasConflicts())
	})
}
