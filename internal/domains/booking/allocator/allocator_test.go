package allocator_test

import (
	"pororo/internal/domains/booking/allocator"
	"pororo/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAllocator(t *testing.T, ranges allocator.Ranges) *allocator.Allocator {
	t.Helper()

	a, err := allocator.New(ranges, allocator.NewSource(42))
	require.NoError(t, err)

	return a
}

func TestAllocator_AllocateWithinRanges(t *testing.T) {
	a := newAllocator(t, allocator.DefaultRanges)

	rooms := map[int]bool{}
	customers := map[int]bool{}

	for range 50 {
		pair, err := a.Allocate()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, pair.RoomNumber, 300)
		assert.LessOrEqual(t, pair.RoomNumber, 359)
		assert.GreaterOrEqual(t, pair.CustomerID, 10)
		assert.LessOrEqual(t, pair.CustomerID, 59)

		assert.False(t, rooms[pair.RoomNumber], "room %d handed out twice", pair.RoomNumber)
		assert.False(t, customers[pair.CustomerID], "customer id %d handed out twice", pair.CustomerID)

		rooms[pair.RoomNumber] = true
		customers[pair.CustomerID] = true
	}

	assert.Equal(t, 0, a.Free())
}

func TestAllocator_ExhaustedPoolDoesNotLoop(t *testing.T) {
	a := newAllocator(t, allocator.DefaultRanges)

	for range 50 {
		_, err := a.Allocate()
		require.NoError(t, err)
	}

	_, err := a.Allocate()
	assert.ErrorIs(t, err, model.ErrPoolExhausted)
}

func TestAllocator_ExhaustionTakesNothing(t *testing.T) {
	a := newAllocator(t, allocator.Ranges{RoomNumberMin: 1, RoomNumberMax: 3, CustomerIDMin: 7, CustomerIDMax: 7})

	first, err := a.Allocate()
	require.NoError(t, err)

	_, err = a.Allocate()
	require.ErrorIs(t, err, model.ErrPoolExhausted)

	taken := 0
	for room := 1; room <= 3; room++ {
		if roomTaken, _ := a.InUse(allocator.Pair{RoomNumber: room}); roomTaken {
			taken++
		}
	}

	assert.Equal(t, 1, taken, "failed allocation must not consume a room number")

	a.Release(first)

	_, err = a.Allocate()
	assert.NoError(t, err)
}

func TestAllocator_ReleasedPairIsReused(t *testing.T) {
	a := newAllocator(t, allocator.DefaultRanges)

	var pairs []allocator.Pair
	for range 50 {
		pair, err := a.Allocate()
		require.NoError(t, err)

		pairs = append(pairs, pair)
	}

	freed := pairs[17]
	a.Release(freed)
	assert.Equal(t, 1, a.Free())

	pair, err := a.Allocate()
	require.NoError(t, err)

	assert.Equal(t, freed.CustomerID, pair.CustomerID)

	roomTaken, customerTaken := a.InUse(pair)
	assert.True(t, roomTaken)
	assert.True(t, customerTaken)
}

func TestAllocator_ReleaseIgnoresUnknownValues(t *testing.T) {
	a := newAllocator(t, allocator.DefaultRanges)

	a.Release(allocator.Pair{RoomNumber: 999, CustomerID: 1})
	a.Release(allocator.Pair{RoomNumber: 300, CustomerID: 10})

	assert.Equal(t, 50, a.Free())
}

func TestAllocator_SameSeedSameSequence(t *testing.T) {
	a1 := newAllocator(t, allocator.DefaultRanges)
	a2 := newAllocator(t, allocator.DefaultRanges)

	for range 10 {
		p1, err := a1.Allocate()
		require.NoError(t, err)

		p2, err := a2.Allocate()
		require.NoError(t, err)

		assert.Equal(t, p1, p2)
	}
}

func TestNew_InvalidRanges(t *testing.T) {
	_, err := allocator.New(allocator.Ranges{RoomNumberMin: 10, RoomNumberMax: 1, CustomerIDMin: 1, CustomerIDMax: 2}, nil)
	assert.Error(t, err)

	_, err = allocator.New(allocator.Ranges{RoomNumberMin: 1, RoomNumberMax: 2, CustomerIDMin: 5, CustomerIDMax: 4}, nil)
	assert.Error(t, err)
}
