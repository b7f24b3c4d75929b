package sim

import "container/heap"

// occupant is one occupied booth slot: the voter inside it and the time
// they leave. seq records insertion order and breaks ties between equal
// departure times so release order is fully deterministic.
type occupant struct {
	voter     *Voter
	departure float64
	seq       uint64
}

// occupantHeap implements heap.Interface ordered by departure time.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type occupantHeap []occupant

func (h occupantHeap) Len() int { return len(h) }

func (h occupantHeap) Less(i, j int) bool {
	if h[i].departure != h[j].departure {
		return h[i].departure < h[j].departure
	}
	return h[i].seq < h[j].seq
}

func (h occupantHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *occupantHeap) Push(x any) {
	*h = append(*h, x.(occupant))
}

func (h *occupantHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// BoothPool tracks which booths of a fixed bank are occupied and until
// when. Admission and release are logarithmic in the number of occupied
// booths; peeking at the next departure is constant time.
//
// The pool has no clock of its own. The engine discovers vacancies
// lazily, comparing arrival times against NextFreeTime.
type BoothPool struct {
	numBooths int
	occupied  occupantHeap
	nextSeq   uint64
}

// NewBoothPool creates an empty pool of numBooths booths.
func NewBoothPool(numBooths int) *BoothPool {
	return &BoothPool{numBooths: numBooths}
}

// Available reports whether at least one booth is open.
func (bp *BoothPool) Available() bool {
	return len(bp.occupied) < bp.numBooths
}

// Occupied reports whether at least one booth is occupied.
func (bp *BoothPool) Occupied() bool {
	return len(bp.occupied) > 0
}

// Len returns the number of occupied booths.
func (bp *BoothPool) Len() int {
	return len(bp.occupied)
}

// Capacity returns the number of booths in the bank.
func (bp *BoothPool) Capacity() int {
	return bp.numBooths
}

// Admit places v in an open booth, keyed by its departure time.
// The voter's start time must already be set. Admitting into a full
// pool is a contract violation, not an input error, and panics.
func (bp *BoothPool) Admit(v *Voter) {
	if !bp.Available() {
		panic("BoothPool.Admit: all booths in use")
	}
	if v.StartTime == nil || v.DepartureTime == nil {
		panic("BoothPool.Admit: voter start time must be set")
	}
	heap.Push(&bp.occupied, occupant{voter: v, departure: *v.DepartureTime, seq: bp.nextSeq})
	bp.nextSeq++
}

// NextFreeTime returns the earliest departure time among occupied
// booths without releasing it. Panics if no booth is occupied.
func (bp *BoothPool) NextFreeTime() float64 {
	if !bp.Occupied() {
		panic("BoothPool.NextFreeTime: no booths in use")
	}
	return bp.occupied[0].departure
}

// ReleaseEarliest removes the occupant with the minimum departure time
// and returns the voter and that time. Panics if no booth is occupied.
func (bp *BoothPool) ReleaseEarliest() (*Voter, float64) {
	if !bp.Occupied() {
		panic("BoothPool.ReleaseEarliest: no booths in use")
	}
	occ := heap.Pop(&bp.occupied).(occupant)
	return occ.voter, occ.departure
}
