package enumx

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

func TestDefine_ConcurrentOneWinner(t *testing.T) {
	type raceKind uint8
	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	infos := make([]*Info, workers)
	lens := make([]int, workers)
	for i := range workers {
		go func() {
			defer wg.Done()
			// Every contender submits a different declaration; exactly one
			// can win and everyone must adopt it.
			members := make([]Member[raceKind], i%3+1)
			for j := range members {
				members[j] = Member[raceKind]{Name: "M" + strconv.Itoa(j), Value: raceKind(j)}
			}
			infos[i] = Define(members).Info()
			lens[i] = len(members)
		}()
	}
	wg.Wait()
	first := infos[0]
	for i, d := range infos {
		if d != first {
			t.Fatalf("worker %d saw a different descriptor", i)
		}
	}
	want := first.Len()
	found := false
	for _, l := range lens {
		if l == want {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("winner len=%d not among submissions", want)
	}
}

func TestDefine_DuplicateKeepsWinner(t *testing.T) {
	type dupKind int32
	first := Define([]Member[dupKind]{{Name: "One", Value: 1}})
	second := Define([]Member[dupKind]{
		{Name: "One", Value: 1},
		{Name: "Two", Value: 2},
	})
	if first.Info() != second.Info() {
		t.Fatalf("redefinition replaced the descriptor")
	}
	if second.Len() != 1 {
		t.Fatalf("len=%d want 1", second.Len())
	}
	if got := Of[dupKind](); got.Info() != first.Info() {
		t.Fatalf("Of returned a different descriptor")
	}
}

func TestOf_LazySingleBuild(t *testing.T) {
	type lazyKind uint16
	var builds atomic.Int32
	DefineLazy(func() ([]Member[lazyKind], error) {
		builds.Add(1)
		return []Member[lazyKind]{
			{Name: "A", Value: 1},
			{Name: "B", Value: 2},
		}, nil
	})
	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	infos := make([]*Info, workers)
	for i := range workers {
		go func() {
			defer wg.Done()
			infos[i] = Of[lazyKind]().Info()
		}()
	}
	wg.Wait()
	if builds.Load() != 1 {
		t.Fatalf("provider ran %d times, want 1", builds.Load())
	}
	for i, d := range infos {
		if d != infos[0] {
			t.Fatalf("worker %d saw a different descriptor", i)
		}
	}
	if infos[0].Len() != 2 {
		t.Fatalf("len=%d want 2", infos[0].Len())
	}
}

func TestLookup_Undefined(t *testing.T) {
	type neverDefined int64
	if _, ok := Lookup[neverDefined](); ok {
		t.Fatalf("Lookup hit for undefined type")
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Of did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUndefined) {
			t.Fatalf("panic=%v want ErrUndefined", r)
		}
	}()
	Of[neverDefined]()
}

func TestCache_DistinctTypesStayApart(t *testing.T) {
	type metricA uint8
	type metricB uint8
	a := Define([]Member[metricA]{{Name: "A", Value: 1}})
	b := Define([]Member[metricB]{{Name: "B", Value: 2}})
	if a.Info() == b.Info() {
		t.Fatalf("distinct types share a descriptor")
	}
	if n, ok := Of[metricA]().NameOf(1); !ok || n != "A" {
		t.Fatalf("metricA lookup: %q %v", n, ok)
	}
	if n, ok := Of[metricB]().NameOf(2); !ok || n != "B" {
		t.Fatalf("metricB lookup: %q %v", n, ok)
	}
}

func TestCache_SnapshotGrowth(t *testing.T) {
	// Push the shared snapshot through several growth rounds and make sure
	// earlier descriptors survive every copy.
	type growA int8
	type growB int16
	type growC int32
	type growD int64
	type growE uint8
	type growF uint16
	type growG uint32
	type growH uint64
	before := cachedTypes()
	a := Define([]Member[growA]{{Name: "A", Value: 1}}).Info()
	Define([]Member[growB]{{Name: "B", Value: 1}})
	Define([]Member[growC]{{Name: "C", Value: 1}})
	Define([]Member[growD]{{Name: "D", Value: 1}})
	Define([]Member[growE]{{Name: "E", Value: 1}})
	Define([]Member[growF]{{Name: "F", Value: 1}})
	Define([]Member[growG]{{Name: "G", Value: 1}})
	h := Define([]Member[growH]{{Name: "H", Value: 1}}).Info()
	if got := cachedTypes(); got < before+8 {
		t.Fatalf("cachedTypes=%d want >= %d", got, before+8)
	}
	if Of[growA]().Info() != a || Of[growH]().Info() != h {
		t.Fatalf("descriptors lost across snapshot growth")
	}
}
