package gridtree

import (
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/tidwall/lotsa"
)

func randPointEntity(rng *rand.Rand, id uint64) *entity {
	x := int64(rng.IntN(100000) - 50000)
	y := int64(rng.IntN(100000) - 50000)
	return newPointEntity(id, NewPos(x, y))
}

// TestThroughput drives a large single-threaded insert/window/remove cycle
// through lotsa.Ops, the same way the corpus times bulk spatial workloads.
// The tree is not safe for concurrent use, so unlike a fully parallel
// benchmark this only exercises operations count, not goroutine fan-out.
func TestThroughput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping throughput test in short mode")
	}
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, 0))

	const n = 50000
	entities := make([]*entity, n)
	for i := range entities {
		entities[i] = randPointEntity(rng, uint64(i+1))
	}

	tr := New(WithDims(2), WithMaxEntries(16), WithGridExpMin(2), WithGridExpMax(20))

	lotsa.Output = os.Stdout
	print("insert ")
	lotsa.Ops(n, 1, func(i, _ int) {
		tr.Insert(entities[i])
	})
	if tr.Size() != n {
		t.Fatalf("expected %d values, got %d", n, tr.Size())
	}

	print("window ")
	lotsa.Ops(n, 1, func(i, _ int) {
		e := entities[i]
		box := NewBox(e.pos.AddScalar(-50), e.pos.AddScalar(50))
		for range tr.Window(box) {
		}
	})

	print("remove ")
	lotsa.Ops(n, 1, func(i, _ int) {
		tr.Remove(entities[i])
	})
	if !tr.Empty() {
		t.Fatalf("expected tree to be empty after removing every value, got size %d", tr.Size())
	}
}
