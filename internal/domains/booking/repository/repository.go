package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"iter"
	"pororo/config"
	"pororo/infras/otel"
	"pororo/internal/domains/booking/allocator"
	"pororo/internal/domains/booking/model"
	"pororo/shared/constant"
	"pororo/shared/timezone"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// Booking is the ledger: the ordered booking records plus the room number and
// customer id pools. Phone lookups always resolve to the first record in
// insertion order.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (model.Booking, error)
	All(ctx context.Context) iter.Seq[model.Booking]
	GetByPhone(ctx context.Context, phone string) (model.Booking, error)
	UpdateByPhone(ctx context.Context, phone string, apply func(*model.Booking) error) (model.Booking, error)
	DeleteByPhone(ctx context.Context, phone string) (model.Booking, error)
}

type repositoryImpl struct {
	mu        sync.RWMutex
	records   []model.Booking
	allocator *allocator.Allocator
	otel      otel.Otel
}

// New builds an empty ledger from the configured pools.
func New(cfg *config.Config, otel otel.Otel) (Booking, error) {
	ranges := allocator.Ranges{
		RoomNumberMin: cfg.Ledger.RoomNumberMin,
		RoomNumberMax: cfg.Ledger.RoomNumberMax,
		CustomerIDMin: cfg.Ledger.CustomerIDMin,
		CustomerIDMax: cfg.Ledger.CustomerIDMax,
	}

	if ranges == (allocator.Ranges{}) {
		ranges = allocator.DefaultRanges
	}

	alloc, err := allocator.New(ranges, allocator.NewSource(cfg.Ledger.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create allocator: %w", err)
	}

	log.Info().
		Int("room_number_min", ranges.RoomNumberMin).
		Int("room_number_max", ranges.RoomNumberMax).
		Int("customer_id_min", ranges.CustomerIDMin).
		Int("customer_id_max", ranges.CustomerIDMax).
		Msg("Booking ledger initialized")

	return NewWithAllocator(alloc, otel), nil
}

func NewWithAllocator(alloc *allocator.Allocator, otel otel.Otel) Booking {
	return &repositoryImpl{
		allocator: alloc,
		otel:      otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (res model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	pair, err := r.allocator.Allocate()
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	booking.RoomNumber = pair.RoomNumber
	booking.CustomerID = pair.CustomerID
	booking.CreatedAt = now
	booking.ModifiedAt = now

	r.records = append(r.records, booking)

	scope.SetAttributes(map[string]any{
		model.FieldRoomNumber: booking.RoomNumber,
		model.FieldCustomerID: booking.CustomerID,
	})

	return booking, nil
}

// All yields a snapshot taken when iteration starts, so every pass sees a
// consistent ledger and the lock is never held while the caller runs.
func (r *repositoryImpl) All(_ context.Context) iter.Seq[model.Booking] {
	return func(yield func(model.Booking) bool) {
		r.mu.RLock()
		snapshot := slices.Clone(r.records)
		r.mu.RUnlock()

		for _, record := range snapshot {
			if !yield(record) {
				return
			}
		}
	}
}

func (r *repositoryImpl) GetByPhone(ctx context.Context, phone string) (model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByPhone")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByPhone(phone)
	if i < 0 {
		return model.Booking{}, model.ErrBookingNotFound
	}

	return r.records[i], nil
}

// UpdateByPhone hands apply a copy of the first matching record and stores it
// only when apply succeeds. Room number and customer id cannot be changed.
func (r *repositoryImpl) UpdateByPhone(ctx context.Context, phone string, apply func(*model.Booking) error) (res model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateByPhone")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByPhone(phone)
	if i < 0 {
		return res, model.ErrBookingNotFound
	}

	current := r.records[i]
	next := current

	if err = apply(&next); err != nil {
		return res, err
	}

	next.RoomNumber = current.RoomNumber
	next.CustomerID = current.CustomerID
	next.Nights = model.NightsBetween(next.CheckIn, next.CheckOut)
	next.CreatedAt = current.CreatedAt
	next.ModifiedAt = timezone.Now()

	if next.Nights <= 0 {
		return res, model.ErrCheckOutNotAfterCheckIn
	}

	r.records[i] = next

	return next, nil
}

func (r *repositoryImpl) DeleteByPhone(ctx context.Context, phone string) (res model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteByPhone")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByPhone(phone)
	if i < 0 {
		return res, model.ErrBookingNotFound
	}

	res = r.records[i]
	r.records = slices.Delete(r.records, i, i+1)

	r.allocator.Release(allocator.Pair{RoomNumber: res.RoomNumber, CustomerID: res.CustomerID})

	return res, nil
}

func (r *repositoryImpl) indexByPhone(phone string) int {
	return slices.IndexFunc(r.records, func(b model.Booking) bool {
		return b.Phone == phone
	})
}
