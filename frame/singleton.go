package frame

import "reflect"

// Singleton gives a system cached access to one resource. Declare it as a
// struct field and the Scheduler binds it on registration:
//
//	type TickSystem struct {
//		Clock frame.Singleton[Clock]
//	}
type Singleton[T any] struct {
	resources *Resources
	ptr       *T
}

// NewSingleton returns an accessor for T, inserting initializer (or the zero
// value) first when the resource does not exist yet.
func NewSingleton[T any](resources *Resources, initializer ...T) *Singleton[T] {
	ptr := Get[T](resources)
	if ptr == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		ptr = Insert(resources, value)
	}
	return &Singleton[T]{resources: resources, ptr: ptr}
}

// Init binds the accessor to resources. The Scheduler calls it during
// registration.
func (s *Singleton[T]) Init(resources *Resources) {
	s.resources = resources
	s.refresh()
}

// Get returns the resource, or nil when it has not been inserted.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.refresh()
	}
	return s.ptr
}

// Exists reports whether the resource has been inserted.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) refresh() {
	if s.resources == nil {
		return
	}
	if v, ok := s.resources.lookup(reflect.TypeFor[T]()); ok {
		s.ptr = v.(*T)
	} else {
		s.ptr = nil
	}
}
