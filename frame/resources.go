package frame

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// iface mirrors the memory layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKey identifies t by the address of its runtime type descriptor, which
// is unique per type for the lifetime of the process.
func typeKey(t reflect.Type) int {
	return int(uintptr((*iface)(unsafe.Pointer(&t)).data))
}

type resourceEntry struct {
	typ reflect.Type
	ptr any
}

// Resources holds at most one value per Go type. Values are stored behind
// pointers, so accessors see each other's updates.
type Resources struct {
	entries *intmap.Map[int, resourceEntry]
	order   []int
}

func NewResources() *Resources {
	return &Resources{
		entries: intmap.New[int, resourceEntry](16),
	}
}

// Insert stores value, replacing any previous value of the same type, and
// returns a pointer to the stored copy.
func Insert[T any](r *Resources, value T) *T {
	t := reflect.TypeFor[T]()
	key := typeKey(t)

	if entry, ok := r.entries.Get(key); ok {
		ptr := entry.ptr.(*T)
		*ptr = value
		return ptr
	}

	ptr := new(T)
	*ptr = value
	r.entries.Put(key, resourceEntry{typ: t, ptr: ptr})
	r.order = append(r.order, key)
	return ptr
}

// Get returns the stored value of type T, or nil.
func Get[T any](r *Resources) *T {
	entry, ok := r.entries.Get(typeKey(reflect.TypeFor[T]()))
	if !ok {
		return nil
	}
	return entry.ptr.(*T)
}

// MustGet is Get for resources the caller cannot run without.
func MustGet[T any](r *Resources) *T {
	ptr := Get[T](r)
	if ptr == nil {
		panic("frame: resource not registered: " + reflect.TypeFor[T]().String())
	}
	return ptr
}

func (r *Resources) Len() int {
	return len(r.order)
}

// Types returns the stored types in insertion order.
func (r *Resources) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(r.order))
	for _, key := range r.order {
		entry, _ := r.entries.Get(key)
		types = append(types, entry.typ)
	}
	return types
}

func (r *Resources) lookup(t reflect.Type) (any, bool) {
	entry, ok := r.entries.Get(typeKey(t))
	if !ok {
		return nil, false
	}
	return entry.ptr, true
}
