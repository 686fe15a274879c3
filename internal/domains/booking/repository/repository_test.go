package repository_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pororo/config"
	"pororo/infras/otel/mocks"
	"pororo/internal/domains/booking/allocator"
	"pororo/internal/domains/booking/model"
	"pororo/internal/domains/booking/repository"
)

func newLedger(t *testing.T, ranges allocator.Ranges) repository.Booking {
	t.Helper()

	alloc, err := allocator.New(ranges, allocator.NewSource(1))
	require.NoError(t, err)

	return repository.NewWithAllocator(alloc, mocks.NewOtel())
}

func booking(t *testing.T, phone string) model.Booking {
	t.Helper()

	b := model.Booking{
		Name:    "Ravi",
		Phone:   phone,
		Address: "3 Lorong Melati",
		Package: model.PackagePerhentianIsland,
	}
	require.NoError(t, b.SetStay(model.NewDate(2025, 3, 1), model.NewDate(2025, 3, 3)))

	return b
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(cfg *config.Config)
		wantErr bool
	}{
		{
			name:  "zero ranges fall back to defaults",
			setup: func(_ *config.Config) {},
		},
		{
			name: "configured ranges",
			setup: func(cfg *config.Config) {
				cfg.Ledger.RoomNumberMin = 1
				cfg.Ledger.RoomNumberMax = 2
				cfg.Ledger.CustomerIDMin = 1
				cfg.Ledger.CustomerIDMax = 2
				cfg.Ledger.Seed = 9
			},
		},
		{
			name: "inverted range",
			setup: func(cfg *config.Config) {
				cfg.Ledger.RoomNumberMin = 10
				cfg.Ledger.RoomNumberMax = 1
				cfg.Ledger.CustomerIDMin = 1
				cfg.Ledger.CustomerIDMax = 2
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			tt.setup(cfg)

			repo, err := repository.New(cfg, mocks.NewOtel())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, repo)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, repo)
		})
	}
}

func TestRepository_Insert(t *testing.T) {
	repo := newLedger(t, allocator.Ranges{RoomNumberMin: 1, RoomNumberMax: 1, CustomerIDMin: 5, CustomerIDMax: 6})

	stored, err := repo.Insert(context.Background(), booking(t, "011"))
	require.NoError(t, err)
	assert.Equal(t, 1, stored.RoomNumber)
	assert.Contains(t, []int{5, 6}, stored.CustomerID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.ModifiedAt)

	_, err = repo.Insert(context.Background(), booking(t, "022"))
	assert.ErrorIs(t, err, model.ErrPoolExhausted)

	assert.Len(t, slices.Collect(repo.All(context.Background())), 1)
}

func TestRepository_AllIsRestartable(t *testing.T) {
	repo := newLedger(t, allocator.DefaultRanges)

	for _, phone := range []string{"a", "b", "c"} {
		_, err := repo.Insert(context.Background(), booking(t, phone))
		require.NoError(t, err)
	}

	seq := repo.All(context.Background())

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)

	var phones []string
	for b := range seq {
		phones = append(phones, b.Phone)
		if len(phones) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, phones)
}

func TestRepository_GetByPhone(t *testing.T) {
	repo := newLedger(t, allocator.DefaultRanges)

	first := booking(t, "0123")
	first.Name = "First"
	second := booking(t, "0123")
	second.Name = "Second"

	_, err := repo.Insert(context.Background(), first)
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), second)
	require.NoError(t, err)

	got, err := repo.GetByPhone(context.Background(), "0123")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)

	_, err = repo.GetByPhone(context.Background(), "012")
	assert.ErrorIs(t, err, model.ErrBookingNotFound)
}

func TestRepository_UpdateByPhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		apply   func(b *model.Booking) error
		wantErr error
		check   func(t *testing.T, before, after model.Booking)
	}{
		{
			name:  "fields replaced and nights recomputed",
			phone: "0123",
			apply: func(b *model.Booking) error {
				b.Address = "New address"
				b.CheckOut = model.NewDate(2025, 3, 8)

				return nil
			},
			check: func(t *testing.T, before, after model.Booking) {
				assert.Equal(t, "New address", after.Address)
				assert.Equal(t, 7, after.Nights)
				assert.Equal(t, before.CreatedAt, after.CreatedAt)
			},
		},
		{
			name:  "room number and customer id cannot change",
			phone: "0123",
			apply: func(b *model.Booking) error {
				b.RoomNumber = 1
				b.CustomerID = 1

				return nil
			},
			check: func(t *testing.T, before, after model.Booking) {
				assert.Equal(t, before.RoomNumber, after.RoomNumber)
				assert.Equal(t, before.CustomerID, after.CustomerID)
			},
		},
		{
			name:  "apply error leaves record untouched",
			phone: "0123",
			apply: func(b *model.Booking) error {
				b.Name = "Half written"

				return errors.New("rejected")
			},
			wantErr: errors.New("rejected"),
		},
		{
			name:  "dates out of order rejected",
			phone: "0123",
			apply: func(b *model.Booking) error {
				b.CheckOut = b.CheckIn

				return nil
			},
			wantErr: model.ErrCheckOutNotAfterCheckIn,
		},
		{
			name:    "unknown phone",
			phone:   "999",
			apply:   func(_ *model.Booking) error { return nil },
			wantErr: model.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newLedger(t, allocator.DefaultRanges)

			before, err := repo.Insert(context.Background(), booking(t, "0123"))
			require.NoError(t, err)

			after, err := repo.UpdateByPhone(context.Background(), tt.phone, tt.apply)

			stored, getErr := repo.GetByPhone(context.Background(), "0123")
			require.NoError(t, getErr)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Equal(t, before, stored)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, after, stored)
			tt.check(t, before, after)
		})
	}
}

func TestRepository_DeleteByPhone(t *testing.T) {
	repo := newLedger(t, allocator.Ranges{RoomNumberMin: 1, RoomNumberMax: 2, CustomerIDMin: 1, CustomerIDMax: 2})

	a, err := repo.Insert(context.Background(), booking(t, "a"))
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), booking(t, "b"))
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), booking(t, "c"))
	require.ErrorIs(t, err, model.ErrPoolExhausted)

	_, err = repo.DeleteByPhone(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrBookingNotFound)

	deleted, err := repo.DeleteByPhone(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, a, deleted)

	c, err := repo.Insert(context.Background(), booking(t, "c"))
	require.NoError(t, err)
	assert.Equal(t, a.RoomNumber, c.RoomNumber)
	assert.Equal(t, a.CustomerID, c.CustomerID)

	var phones []string
	for b := range repo.All(context.Background()) {
		phones = append(phones, b.Phone)
	}

	assert.Equal(t, []string{"b", "c"}, phones)
}

func TestRepository_ConcurrentInsert(t *testing.T) {
	repo := newLedger(t, allocator.DefaultRanges)

	var wg sync.WaitGroup

	b := booking(t, "x")
	errs := make(chan error, 60)

	for range 60 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := repo.Insert(context.Background(), b); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	var exhausted int
	for err := range errs {
		assert.ErrorIs(t, err, model.ErrPoolExhausted)
		exhausted++
	}

	assert.Equal(t, 10, exhausted)

	records := slices.Collect(repo.All(context.Background()))
	require.Len(t, records, 50)

	ids := map[int]bool{}
	for _, r := range records {
		assert.False(t, ids[r.CustomerID])
		ids[r.CustomerID] = true
	}
}
