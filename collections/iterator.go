package collections

import (
	"iter"
	"sync"
)

// Iterator provides pull-based sequential access to entries. It is the
// protocol every LazyCollection stage implements: a stage holds exactly one
// upstream Iterator and pulls from it on demand.
type Iterator[V any] interface {
	// Next returns the next entry. Returns false when exhausted.
	Next() (Entry[V], bool)
	// Stop releases the iterator and everything upstream of it. Calling Next
	// after Stop reports exhaustion.
	Stop()
}

// --- Sources ---

type emptyIter[V any] struct{}

func (emptyIter[V]) Next() (Entry[V], bool) { return Entry[V]{}, false }
func (emptyIter[V]) Stop()                  {}

type sliceIter[V any] struct {
	entries []Entry[V]
	index   int
}

func (it *sliceIter[V]) Next() (Entry[V], bool) {
	if it.index >= len(it.entries) {
		return Entry[V]{}, false
	}
	e := it.entries[it.index]
	it.index++
	return e, true
}

func (it *sliceIter[V]) Stop() { it.index = len(it.entries) }

// seqIter pulls values out of a push-style generator and numbers them 0, 1, …
type seqIter[V any] struct {
	next  func() (V, bool)
	stop  func()
	index int
}

func newSeqIter[V any](seq iter.Seq[V]) *seqIter[V] {
	next, stop := iter.Pull(seq)
	return &seqIter[V]{next: next, stop: stop}
}

func (it *seqIter[V]) Next() (Entry[V], bool) {
	v, ok := it.next()
	if !ok {
		return Entry[V]{}, false
	}
	e := Entry[V]{Key: Index(it.index), Value: v}
	it.index++
	return e, true
}

func (it *seqIter[V]) Stop() { it.stop() }

// oneShot hands out its generator to the first walk only.
type oneShot[V any] struct {
	mu   sync.Mutex
	gen  iter.Seq[V]
	used bool
}

func (o *oneShot[V]) open() Iterator[V] {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.used {
		l := Logger()
		l.Debug().Msg("lazy collection: generator already consumed, yielding no values")
		return emptyIter[V]{}
	}
	o.used = true
	return newSeqIter(o.gen)
}

// memo caches entries pulled from a source so several walks can share them.
// The source is only pulled as far as the furthest walk has gone, and stays
// open until it reports exhaustion. at holds mu while pulling, so a stage
// upstream of the memo must not walk the same remembered collection.
type memo[V any] struct {
	mu     sync.Mutex
	open   func() Iterator[V]
	source Iterator[V]
	cache  []Entry[V]
	done   bool
}

func (m *memo[V]) at(i int) (Entry[V], bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for len(m.cache) <= i && !m.done {
		if m.source == nil {
			m.source = m.open()
		}
		e, ok := m.source.Next()
		if !ok {
			m.done = true
			m.source.Stop()
			m.source, m.open = nil, nil
			break
		}
		m.cache = append(m.cache, e)
	}
	if i < len(m.cache) {
		return m.cache[i], true
	}
	return Entry[V]{}, false
}

type memoIter[V any] struct {
	memo    *memo[V]
	index   int
	stopped bool
}

func (it *memoIter[V]) Next() (Entry[V], bool) {
	if it.stopped {
		return Entry[V]{}, false
	}
	e, ok := it.memo.at(it.index)
	if ok {
		it.index++
	}
	return e, ok
}

// Stop ends this walk only; the shared source stays open for other walks.
func (it *memoIter[V]) Stop() { it.stopped = true }

// --- Stages ---

type mapIter[V, U any] struct {
	source Iterator[V]
	fn     func(V, Key) U
}

func (it *mapIter[V, U]) Next() (Entry[U], bool) {
	e, ok := it.source.Next()
	if !ok {
		return Entry[U]{}, false
	}
	return Entry[U]{Key: e.Key, Value: it.fn(e.Value, e.Key)}, true
}

func (it *mapIter[V, U]) Stop() { it.source.Stop() }

type filterIter[V any] struct {
	source Iterator[V]
	fn     func(V, Key) bool
}

func (it *filterIter[V]) Next() (Entry[V], bool) {
	for {
		e, ok := it.source.Next()
		if !ok {
			return e, false
		}
		if it.fn(e.Value, e.Key) {
			return e, true
		}
	}
}

func (it *filterIter[V]) Stop() { it.source.Stop() }

// takeIter never pulls more than limit entries from upstream.
type takeIter[V any] struct {
	source Iterator[V]
	limit  int
	taken  int
}

func (it *takeIter[V]) Next() (Entry[V], bool) {
	if it.taken >= it.limit {
		return Entry[V]{}, false
	}
	e, ok := it.source.Next()
	if !ok {
		it.taken = it.limit
		return e, false
	}
	it.taken++
	return e, true
}

func (it *takeIter[V]) Stop() { it.source.Stop() }

// takeLastIter drains upstream, keeping only the last n entries.
type takeLastIter[V any] struct {
	source Iterator[V]
	n      int
	buf    []Entry[V]
	filled bool
}

func (it *takeLastIter[V]) Next() (Entry[V], bool) {
	if !it.filled {
		it.filled = true
		for {
			e, ok := it.source.Next()
			if !ok {
				break
			}
			it.buf = append(it.buf, e)
			if len(it.buf) > it.n {
				it.buf = it.buf[1:]
			}
		}
	}
	if len(it.buf) == 0 {
		return Entry[V]{}, false
	}
	e := it.buf[0]
	it.buf = it.buf[1:]
	return e, true
}

func (it *takeLastIter[V]) Stop() { it.source.Stop() }

// takeUntilIter stops at the first entry satisfying fn, which is consumed
// from upstream but not yielded.
type takeUntilIter[V any] struct {
	source Iterator[V]
	fn     func(V, Key) bool
	done   bool
}

func (it *takeUntilIter[V]) Next() (Entry[V], bool) {
	if it.done {
		return Entry[V]{}, false
	}
	e, ok := it.source.Next()
	if !ok || it.fn(e.Value, e.Key) {
		it.done = true
		return Entry[V]{}, false
	}
	return e, true
}

func (it *takeUntilIter[V]) Stop() { it.source.Stop() }

type skipIter[V any] struct {
	source  Iterator[V]
	n       int
	skipped bool
}

func (it *skipIter[V]) Next() (Entry[V], bool) {
	if !it.skipped {
		it.skipped = true
		for i := 0; i < it.n; i++ {
			if _, ok := it.source.Next(); !ok {
				return Entry[V]{}, false
			}
		}
	}
	return it.source.Next()
}

func (it *skipIter[V]) Stop() { it.source.Stop() }

// skipUntilIter drops entries until fn holds, then passes everything through.
type skipUntilIter[V any] struct {
	source  Iterator[V]
	fn      func(V, Key) bool
	started bool
}

func (it *skipUntilIter[V]) Next() (Entry[V], bool) {
	for {
		e, ok := it.source.Next()
		if !ok || it.started {
			return e, ok
		}
		if it.fn(e.Value, e.Key) {
			it.started = true
			return e, true
		}
	}
}

func (it *skipUntilIter[V]) Stop() { it.source.Stop() }

// chunkIter buffers at most one chunk at a time.
type chunkIter[V any] struct {
	source Iterator[V]
	size   int
	index  int
	done   bool
}

func (it *chunkIter[V]) Next() (Entry[*Collection[V]], bool) {
	if it.done {
		return Entry[*Collection[V]]{}, false
	}
	chunk := withCapacity[V](it.size)
	for chunk.Count() < it.size {
		e, ok := it.source.Next()
		if !ok {
			it.done = true
			break
		}
		chunk.add(e.Key, e.Value)
	}
	if chunk.IsEmpty() {
		return Entry[*Collection[V]]{}, false
	}
	e := Entry[*Collection[V]]{Key: Index(it.index), Value: chunk}
	it.index++
	return e, true
}

func (it *chunkIter[V]) Stop() { it.source.Stop() }

// valuesIter renumbers keys from 0.
type valuesIter[V any] struct {
	source Iterator[V]
	index  int
}

func (it *valuesIter[V]) Next() (Entry[V], bool) {
	e, ok := it.source.Next()
	if !ok {
		return e, false
	}
	e.Key = Index(it.index)
	it.index++
	return e, true
}

func (it *valuesIter[V]) Stop() { it.source.Stop() }

type tapIter[V any] struct {
	source Iterator[V]
	fn     func(V, Key)
}

func (it *tapIter[V]) Next() (Entry[V], bool) {
	e, ok := it.source.Next()
	if ok {
		it.fn(e.Value, e.Key)
	}
	return e, ok
}

func (it *tapIter[V]) Stop() { it.source.Stop() }
