package trigger

import "sync"

// node is a single registration, linked intrusively into its bucket chain.
type node[T any] struct {
	name     string
	priority uint8
	once     bool
	fn       Callback[T]
	ctx      any
	next     *node[T]
	slot     int32 // index into the bounded arena, -1 for heap nodes
}

// nodeStore abstracts the two allocation strategies so the registry logic is
// identical across them. acquire may fail, release never does.
type nodeStore[T any] interface {
	acquire(name string) (*node[T], error)
	release(n *node[T])
}

// dynamicStore hands out heap nodes, recycling them through a [sync.Pool].
// A non-zero max caps the number of live registrations.
type dynamicStore[T any] struct {
	pool sync.Pool
	live int
	max  int
}

func newDynamicStore[T any](max int) *dynamicStore[T] {
	s := &dynamicStore[T]{max: max}
	s.pool.New = func() any {
		return &node[T]{slot: -1}
	}
	return s
}

func (s *dynamicStore[T]) acquire(name string) (*node[T], error) {
	if s.max > 0 && s.live >= s.max {
		return nil, ErrOutOfMemory
	}
	n := s.pool.Get().(*node[T])
	n.name = name
	s.live++
	return n, nil
}

func (s *dynamicStore[T]) release(n *node[T]) {
	*n = node[T]{slot: -1}
	s.live--
	s.pool.Put(n)
}

// boundedStore is a preallocated slot arena with a free-index stack.
// It never allocates after construction and never grows.
type boundedStore[T any] struct {
	slots   []node[T]
	free    []int32 // stack of unused slot indexes; the top is handed out next
	maxName int
}

func newBoundedStore[T any](maxNodes, maxName int) *boundedStore[T] {
	s := &boundedStore[T]{
		slots:   make([]node[T], maxNodes),
		free:    make([]int32, maxNodes),
		maxName: maxName,
	}
	for i := range s.free {
		s.free[i] = int32(len(s.free) - 1 - i)
	}
	return s
}

func (s *boundedStore[T]) acquire(name string) (*node[T], error) {
	// The name check runs first so an oversized name fails the same way
	// whether or not slots remain.
	if len(name) >= s.maxName {
		return nil, ErrNameTooLong
	}
	if len(s.free) == 0 {
		return nil, ErrPoolExhausted
	}
	i := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]
	n := &s.slots[i]
	n.name = name
	n.slot = i
	return n, nil
}

func (s *boundedStore[T]) release(n *node[T]) {
	i := n.slot
	*n = node[T]{slot: i}
	s.free = append(s.free, i)
}
