package subset

import (
	"iter"
	"sync"
)

// Hashable is implemented by keys of a Registry.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// Registry interns Hashable keys, mapping each distinct key to the first value registered for it.
// Determinize registers every canonical NFA state set under the id of the DFA state it becomes.
// Collisions are chained per bucket. Safe for concurrent use.
type Registry[T any] struct {
	mu         sync.RWMutex
	buckets    []*slot[T]
	count      int
	maxLoad    float64
	emptyValue T
}

type slot[T any] struct {
	hash  uint64
	key   Hashable
	value T
	next  *slot[T]
}

type registryOptions struct {
	buckets int
	maxLoad float64
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*registryOptions)

// WithBuckets Initial number of buckets, rounded up to a power of two.
func WithBuckets(n int) RegistryOption {
	return func(o *registryOptions) {
		o.buckets = n
	}
}

// WithMaxLoad Average chain length above which the bucket array doubles.
func WithMaxLoad(load float64) RegistryOption {
	return func(o *registryOptions) {
		o.maxLoad = load
	}
}

func NewRegistry[T any](opts ...RegistryOption) *Registry[T] {
	o := &registryOptions{buckets: 1, maxLoad: 0.75}
	for _, fn := range opts {
		fn(o)
	}

	n := 1
	for n < o.buckets {
		n <<= 1
	}
	return &Registry[T]{
		buckets: make([]*slot[T], n),
		maxLoad: o.maxLoad,
	}
}

// Intern Registers value under key unless an equal key is already registered. Returns the value
// registered for key and whether it was registered before the call.
func (r *Registry[T]) Intern(key Hashable, value T) (T, bool) {
	h := key.Hash()

	r.mu.Lock()
	defer r.mu.Unlock()

	if s := r.lookup(h, key); s != nil {
		return s.value, true
	}

	i := h & uint64(len(r.buckets)-1)
	r.buckets[i] = &slot[T]{hash: h, key: key, value: value, next: r.buckets[i]}
	r.count++
	if float64(r.count) > r.maxLoad*float64(len(r.buckets)) {
		r.rehash()
	}
	return value, false
}

// Lookup Returns the value registered for key.
func (r *Registry[T]) Lookup(key Hashable) (T, bool) {
	h := key.Hash()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if s := r.lookup(h, key); s != nil {
		return s.value, true
	}
	return r.emptyValue, false
}

// Len How many keys are registered.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// All Yields every key and its value. The registry must not change while iterating.
func (r *Registry[T]) All() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, head := range r.buckets {
			for s := head; s != nil; s = s.next {
				if !yield(s.key, s.value) {
					return
				}
			}
		}
	}
}

// Caller holds the lock.
func (r *Registry[T]) lookup(h uint64, key Hashable) *slot[T] {
	for s := r.buckets[h&uint64(len(r.buckets)-1)]; s != nil; s = s.next {
		if s.hash == h && s.key.Equals(key) {
			return s
		}
	}
	return nil
}

// Relinks the existing slots into twice as many buckets. Caller holds the write lock.
func (r *Registry[T]) rehash() {
	buckets := make([]*slot[T], len(r.buckets)*2)
	mask := uint64(len(buckets) - 1)
	for _, head := range r.buckets {
		for s := head; s != nil; {
			next := s.next
			i := s.hash & mask
			s.next = buckets[i]
			buckets[i] = s
			s = next
		}
	}
	r.buckets = buckets
}
