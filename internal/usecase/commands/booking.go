package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/domain/pricing"
	"venue-boxoffice/internal/domain/revenue"
	"venue-boxoffice/internal/pkg/clock"
	"venue-boxoffice/internal/pkg/errs"
	"venue-boxoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GroupView struct {
	ID        uuid.UUID
	State     booking.State
	CreatedAt time.Time
	Requests  []booking.Request
	Conflicts []booking.ConflictPair
}

type MultiDayInput struct {
	Selections    booking.Selections
	ClientName    string
	EventName     string
	Configuration string
}

type CommitResult struct {
	GroupID       uuid.UUID
	BookingIDs    []uuid.UUID
	PricedCount   int
	RoomRateTotal decimal.Decimal
}

type BookingCommands interface {
	CreateGroup(ctx context.Context) (*GroupView, error)
	GetGroup(ctx context.Context, groupID uuid.UUID) (*GroupView, error)
	AddRequest(ctx context.Context, groupID uuid.UUID, params booking.RequestParams) (*GroupView, error)
	AddMultiDay(ctx context.Context, groupID uuid.UUID, in MultiDayInput) (*GroupView, error)
	RemoveRequest(ctx context.Context, groupID uuid.UUID, index int) (*GroupView, error)
	Conflicts(ctx context.Context, groupID uuid.UUID) ([]booking.ConflictPair, error)
	Commit(ctx context.Context, groupID uuid.UUID) (*CommitResult, error)
	Discard(ctx context.Context, groupID uuid.UUID) error
}

type bookingCommandsImpl struct {
	groups shared.GroupStore
	uow    shared.UnitOfWork
	calc   pricing.PriceCalculator
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(
	groups shared.GroupStore,
	uow shared.UnitOfWork,
	calc pricing.PriceCalculator,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		groups: groups,
		uow:    uow,
		calc:   calc,
		clock:  clk,
		logger: logger,
	}
}

func (uc *bookingCommandsImpl) CreateGroup(_ context.Context) (*GroupView, error) {
	g := booking.NewGroup(uuid.New(), uc.clock.Now())
	uc.groups.Put(g)
	uc.logger.Debug("booking group created", slog.String("group_id", g.ID().String()))
	return viewOf(g), nil
}

func (uc *bookingCommandsImpl) GetGroup(_ context.Context, groupID uuid.UUID) (*GroupView, error) {
	g, err := uc.group(groupID)
	if err != nil {
		return nil, err
	}
	return viewOf(g), nil
}

func (uc *bookingCommandsImpl) AddRequest(_ context.Context, groupID uuid.UUID, params booking.RequestParams) (*GroupView, error) {
	g, err := uc.group(groupID)
	if err != nil {
		return nil, err
	}
	req, err := booking.NewRequest(params)
	if err != nil {
		return nil, err
	}
	if err := uc.checkPriced(req); err != nil {
		return nil, err
	}
	if err := g.Add(req); err != nil {
		return nil, err
	}
	return viewOf(g), nil
}

func (uc *bookingCommandsImpl) AddMultiDay(_ context.Context, groupID uuid.UUID, in MultiDayInput) (*GroupView, error) {
	g, err := uc.group(groupID)
	if err != nil {
		return nil, err
	}
	reqs, err := booking.ExpandSelections(in.Selections, in.ClientName, in.EventName, in.Configuration)
	if err != nil {
		return nil, err
	}
	for _, r := range reqs {
		if err := uc.checkPriced(r); err != nil {
			return nil, err
		}
	}
	if err := g.AddAll(reqs...); err != nil {
		return nil, err
	}
	return viewOf(g), nil
}

func (uc *bookingCommandsImpl) RemoveRequest(_ context.Context, groupID uuid.UUID, index int) (*GroupView, error) {
	g, err := uc.group(groupID)
	if err != nil {
		return nil, err
	}
	if err := g.Remove(index); err != nil {
		return nil, err
	}
	return viewOf(g), nil
}

func (uc *bookingCommandsImpl) Conflicts(_ context.Context, groupID uuid.UUID) ([]booking.ConflictPair, error) {
	g, err := uc.group(groupID)
	if err != nil {
		return nil, err
	}
	return g.Conflicts(), nil
}

func (uc *bookingCommandsImpl) Commit(ctx context.Context, groupID uuid.UUID) (*CommitResult, error) {
	g, err := uc.group(groupID)
	if err != nil {
		return nil, err
	}

	tx := &pricedTransactor{uow: uc.uow, calc: uc.calc}
	ids, err := g.CommitTx(ctx, tx)
	if err != nil {
		return nil, uc.commitError(groupID, err)
	}

	uc.logger.Info("booking group committed",
		slog.String("group_id", groupID.String()),
		slog.Int("bookings", len(ids)),
		slog.Int("priced", tx.priced),
		slog.String("room_rate_total", tx.total.StringFixed(2)))

	return &CommitResult{
		GroupID:       groupID,
		BookingIDs:    ids,
		PricedCount:   tx.priced,
		RoomRateTotal: tx.total,
	}, nil
}

func (uc *bookingCommandsImpl) commitError(groupID uuid.UUID, err error) error {
	attrs := []any{slog.String("group_id", groupID.String()), slog.String("error", err.Error())}

	switch {
	case errors.Is(err, booking.ErrConflict):
		uc.logger.Warn("booking group commit refused", attrs...)
		return err
	case errors.Is(err, pricing.ErrRuleNotFound):
		uc.logger.Warn("booking group commit could not price a request", attrs...)
		return errs.Mark(err, errs.ErrUnpricedBooking)
	case errors.Is(err, booking.ErrPersistence):
		uc.logger.Error("booking group commit failed", attrs...)
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}

func (uc *bookingCommandsImpl) Discard(_ context.Context, groupID uuid.UUID) error {
	g, err := uc.group(groupID)
	if err != nil {
		return err
	}
	return g.Discard()
}

func (uc *bookingCommandsImpl) group(id uuid.UUID) (*booking.Group, error) {
	g, ok := uc.groups.Get(id)
	if !ok {
		return nil, errs.Mark(errs.New("booking group "+id.String()), errs.ErrGroupNotFound)
	}
	return g, nil
}

// checkPriced rejects a booking type the price table cannot settle at commit.
func (uc *bookingCommandsImpl) checkPriced(req booking.Request) error {
	if !req.HasBookingType() {
		return nil
	}
	_, err := uc.calc.Calculate(req.Venue(), req.DayType(), req.BookingType(), req.Hours(), false)
	if errors.Is(err, pricing.ErrRuleNotFound) {
		return errs.Mark(err, errs.ErrUnpricedBooking)
	}
	return err
}

func viewOf(g *booking.Group) *GroupView {
	snap := g.Snapshot()
	return &GroupView{
		ID:        g.ID(),
		State:     snap.State,
		CreatedAt: g.CreatedAt(),
		Requests:  snap.Requests,
		Conflicts: snap.Conflicts,
	}
}

// pricedTransactor saves each request through the unit of work and records a
// revenue entry for requests that carry a booking type.
type pricedTransactor struct {
	uow    shared.UnitOfWork
	calc   pricing.PriceCalculator
	priced int
	total  decimal.Decimal
}

func (t *pricedTransactor) InTx(ctx context.Context, fn func(ctx context.Context, saver booking.Saver) error) error {
	return t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may retry fn.
		t.priced, t.total = 0, decimal.Zero
		return fn(ctx, booking.SaverFunc(func(ctx context.Context, req booking.Request) (uuid.UUID, error) {
			return t.save(ctx, tx, req)
		}))
	})
}

func (t *pricedTransactor) save(ctx context.Context, tx shared.Tx, req booking.Request) (uuid.UUID, error) {
	id, err := tx.Bookings().Save(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}
	if !req.HasBookingType() {
		return id, nil
	}

	rate, err := t.calc.Calculate(req.Venue(), req.DayType(), req.BookingType(), req.Hours(), false)
	if err != nil {
		return uuid.Nil, err
	}
	entry := revenue.NewEntry(req.Venue(), req.Date(), req.BookingType().String(), rate, decimal.Zero)
	if err := tx.RevenueEntries().Record(ctx, id, entry); err != nil {
		return uuid.Nil, err
	}
	t.priced++
	t.total = t.total.Add(rate)
	return id, nil
}
