// Package allocator hands out room numbers and customer ids from two small
// fixed pools. Allocation picks uniformly among the free values and always
// terminates: an empty pool is reported as model.ErrPoolExhausted.
package allocator

import (
	"fmt"
	"math/rand/v2"
	"pororo/internal/domains/booking/model"
)

// Ranges are the inclusive bounds of both pools.
type Ranges struct {
	RoomNumberMin int
	RoomNumberMax int
	CustomerIDMin int
	CustomerIDMax int
}

// DefaultRanges are the agency's room numbers 300-359 and customer ids 10-59.
var DefaultRanges = Ranges{
	RoomNumberMin: 300,
	RoomNumberMax: 359,
	CustomerIDMin: 10,
	CustomerIDMax: 59,
}

// Pair is one allocation: a room number and a customer id taken together.
type Pair struct {
	RoomNumber int
	CustomerID int
}

// Allocator is not safe for concurrent use; the ledger serialises access.
type Allocator struct {
	rooms     *pool
	customers *pool
	rng       *rand.Rand
}

// NewSource returns a PCG source. A zero seed yields a randomly seeded source.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec
	}

	return rand.New(rand.NewPCG(uint64(seed), uint64(seed))) //nolint:gosec
}

func New(ranges Ranges, rng *rand.Rand) (*Allocator, error) {
	if ranges.RoomNumberMin > ranges.RoomNumberMax {
		return nil, fmt.Errorf("invalid room number range %d-%d", ranges.RoomNumberMin, ranges.RoomNumberMax)
	}

	if ranges.CustomerIDMin > ranges.CustomerIDMax {
		return nil, fmt.Errorf("invalid customer id range %d-%d", ranges.CustomerIDMin, ranges.CustomerIDMax)
	}

	if rng == nil {
		rng = NewSource(0)
	}

	return &Allocator{
		rooms:     newPool(ranges.RoomNumberMin, ranges.RoomNumberMax),
		customers: newPool(ranges.CustomerIDMin, ranges.CustomerIDMax),
		rng:       rng,
	}, nil
}

// Allocate takes one free room number and one free customer id. When either
// pool is empty nothing is taken and model.ErrPoolExhausted is returned.
func (a *Allocator) Allocate() (Pair, error) {
	if a.rooms.empty() || a.customers.empty() {
		return Pair{}, model.ErrPoolExhausted
	}

	return Pair{
		RoomNumber: a.rooms.take(a.rng),
		CustomerID: a.customers.take(a.rng),
	}, nil
}

// Release returns both values of a pair to their pools.
// Values that are outside the pools or already free are ignored.
func (a *Allocator) Release(pair Pair) {
	a.rooms.put(pair.RoomNumber)
	a.customers.put(pair.CustomerID)
}

// Free is the number of pairs that can still be allocated.
func (a *Allocator) Free() int {
	return min(len(a.rooms.free), len(a.customers.free))
}

// InUse reports whether the room number or the customer id is currently taken.
func (a *Allocator) InUse(pair Pair) (roomTaken, customerTaken bool) {
	return a.rooms.taken(pair.RoomNumber), a.customers.taken(pair.CustomerID)
}

// pool is a free-list with swap-remove so that take and put are O(1).
type pool struct {
	min, max int
	free     []int
	index    map[int]int // value -> position in free
}

func newPool(lo, hi int) *pool {
	p := &pool{
		min:   lo,
		max:   hi,
		free:  make([]int, 0, hi-lo+1),
		index: make(map[int]int, hi-lo+1),
	}

	for v := lo; v <= hi; v++ {
		p.index[v] = len(p.free)
		p.free = append(p.free, v)
	}

	return p
}

func (p *pool) empty() bool {
	return len(p.free) == 0
}

func (p *pool) take(rng *rand.Rand) int {
	i := rng.IntN(len(p.free))
	v := p.free[i]

	last := len(p.free) - 1
	p.free[i] = p.free[last]
	p.index[p.free[i]] = i
	p.free = p.free[:last]
	delete(p.index, v)

	return v
}

func (p *pool) put(v int) {
	if v < p.min || v > p.max {
		return
	}

	if _, free := p.index[v]; free {
		return
	}

	p.index[v] = len(p.free)
	p.free = append(p.free, v)
}

func (p *pool) taken(v int) bool {
	if v < p.min || v > p.max {
		return false
	}

	_, free := p.index[v]

	return !free
}
