package repository

import "math/rand"

type lockedTicket struct {
	id     string
	number int
}

// reservoir keeps a uniform random sample of size k over a stream of locked
// ticket rows without materializing the stream. Used by ReserveRandom so the
// memory bound is the order quantity, not the raffle size.
type reservoir struct {
	k     int
	seen  int
	rnd   *rand.Rand
	items []lockedTicket
}

func newReservoir(k int, rnd *rand.Rand) *reservoir {
	return &reservoir{
		k:     k,
		rnd:   rnd,
		items: make([]lockedTicket, 0, k),
	}
}

func (r *reservoir) offer(t lockedTicket) {
	r.seen++
	if len(r.items) < r.k {
		r.items = append(r.items, t)
		return
	}
	if j := r.rnd.Intn(r.seen); j < r.k {
		r.items[j] = t
	}
}

// sample returns the selected tickets; valid once the stream is exhausted.
func (r *reservoir) sample() []lockedTicket {
	return r.items
}
