package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StateBuilding  State = "building"
	StateSubmitted State = "submitted"
	StateDiscarded State = "discarded"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	return s == StateSubmitted || s == StateDiscarded
}

// Saver is the persistence collaborator invoked once per request on commit.
type Saver interface {
	Save(ctx context.Context, req Request) (uuid.UUID, error)
}

type SaverFunc func(ctx context.Context, req Request) (uuid.UUID, error)

func (f SaverFunc) Save(ctx context.Context, req Request) (uuid.UUID, error) {
	return f(ctx, req)
}

// Group is a pending set of requests committed as one unit.
// All methods are safe for concurrent use; commit holds the lock for the whole save loop.
type Group struct {
	mu        sync.Mutex
	id        uuid.UUID
	state     State
	pending   []Request
	createdAt time.Time
}

func NewGroup(id uuid.UUID, createdAt time.Time) *Group {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Group{
		id:        id,
		state:     StateBuilding,
		createdAt: createdAt,
	}
}

func (g *Group) ID() uuid.UUID        { return g.id }
func (g *Group) CreatedAt() time.Time { return g.createdAt }

func (g *Group) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *Group) Requests() []Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Request(nil), g.pending...)
}

// Snapshot is a consistent read of a group taken under one lock.
type Snapshot struct {
	State     State
	Requests  []Request
	Conflicts []ConflictPair
}

func (g *Group) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	reqs := append([]Request(nil), g.pending...)
	return Snapshot{
		State:     g.state,
		Requests:  reqs,
		Conflicts: FindConflicts(reqs),
	}
}

func (g *Group) Add(req Request) error {
	return g.AddAll(req)
}

// AddAll appends every request or none of them.
func (g *Group) AddAll(reqs ...Request) error {
	for _, r := range reqs {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.IsTerminal() {
		return ErrGroupClosed
	}
	g.pending = append(g.pending, reqs...)
	return nil
}

func (g *Group) AddMultiDay(sel Selections, clientName, eventName, configuration string) ([]Request, error) {
	reqs, err := ExpandSelections(sel, clientName, eventName, configuration)
	if err != nil {
		return nil, err
	}
	if err := g.AddAll(reqs...); err != nil {
		return nil, err
	}
	return reqs, nil
}

// Remove drops the request at index so a conflicting selection can be amended.
func (g *Group) Remove(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.IsTerminal() {
		return ErrGroupClosed
	}
	if index < 0 || index >= len(g.pending) {
		return ErrNoSuchIndex
	}
	g.pending = append(g.pending[:index:index], g.pending[index+1:]...)
	return nil
}

func (g *Group) HasConflicts() bool {
	return len(g.Conflicts()) > 0
}

func (g *Group) Conflicts() []ConflictPair {
	g.mu.Lock()
	defer g.mu.Unlock()
	return FindConflicts(g.pending)
}

// Transactor runs fn as one persistence transaction. Any error from fn, or from
// committing the transaction, must leave nothing persisted.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context, saver Saver) error) error
}

type directTx struct {
	saver Saver
}

func (d directTx) InTx(ctx context.Context, fn func(ctx context.Context, saver Saver) error) error {
	return fn(ctx, d.saver)
}

// Commit saves every pending request in order and closes the group.
// With conflicts present nothing is saved. When the saver fails the group keeps
// its requests and stays open so the caller can retry.
func (g *Group) Commit(ctx context.Context, saver Saver) ([]uuid.UUID, error) {
	return g.CommitTx(ctx, directTx{saver: saver})
}

// CommitTx is Commit with the save loop wrapped in tx, so a failed
// transaction commit also leaves the group open.
func (g *Group) CommitTx(ctx context.Context, tx Transactor) ([]uuid.UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.IsTerminal() {
		return nil, ErrGroupClosed
	}
	if len(g.pending) == 0 {
		return nil, ErrEmptyGroup
	}
	if pairs := FindConflicts(g.pending); len(pairs) > 0 {
		return nil, &ConflictError{Pairs: pairs}
	}

	var ids []uuid.UUID
	err := tx.InTx(ctx, func(ctx context.Context, saver Saver) error {
		ids = make([]uuid.UUID, 0, len(g.pending))
		for i, req := range g.pending {
			id, err := saver.Save(ctx, req)
			if err != nil {
				return &PersistenceError{Index: i, Request: req, Err: err}
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		var pe *PersistenceError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, &PersistenceError{Index: -1, Err: err}
	}

	g.pending = nil
	g.state = StateSubmitted
	return ids, nil
}

func (g *Group) Discard() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.IsTerminal() {
		return ErrGroupClosed
	}
	g.pending = nil
	g.state = StateDiscarded
	return nil
}

// FindConflicts reports every overlapping pair, in index order.
func FindConflicts(reqs []Request) []ConflictPair {
	var pairs []ConflictPair
	for i := 0; i < len(reqs); i++ {
		for j := i + 1; j < len(reqs); j++ {
			if reqs[i].Overlaps(reqs[j]) {
				pairs = append(pairs, ConflictPair{First: i, Second: j, A: reqs[i], B: reqs[j]})
			}
		}
	}
	return pairs
}
