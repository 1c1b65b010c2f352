package collections

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

type (
	// Comparator is a total-order comparison strategy: negative if a sorts
	// before b, positive if after, zero if neither.
	//
	// Sort entry points and ordered helpers accept a nil Comparator to mean
	// "use the item type's natural ordering"; item types without one cause a
	// [CapabilityError].
	Comparator[T any] func(a, b T) int

	// Equality is a pluggable equality strategy paired with a consistent
	// hash: Equal(a, b) implies Hash(a) == Hash(b).
	//
	// Containers fix their Equality at construction; see [WithEquality].
	Equality[T any] interface {
		Equal(a, b T) bool
		Hash(v T) uint64
	}

	// equalityFunc adapts a pair of functions to Equality.
	equalityFunc[T any] struct {
		equal func(a, b T) bool
		hash  func(v T) uint64
	}

	// structuralEquality is the default Equality: == for comparable item
	// types (falling back to reflect.DeepEqual otherwise), and a
	// deterministic FNV-1a hash derived via reflection.
	structuralEquality[T any] struct{}
)

// EqualityFunc adapts an equality predicate and a consistent hash function to
// an [Equality]. A panic occurs if either function is nil.
func EqualityFunc[T any](equal func(a, b T) bool, hash func(v T) uint64) Equality[T] {
	if equal == nil || hash == nil {
		panic(`collections: nil equality function`)
	}
	return &equalityFunc[T]{equal: equal, hash: hash}
}

func (x *equalityFunc[T]) Equal(a, b T) bool { return x.equal(a, b) }

func (x *equalityFunc[T]) Hash(v T) uint64 { return x.hash(v) }

// StructuralEquality returns the default [Equality], comparing items with ==
// where the item type is comparable, and reflect.DeepEqual otherwise. For
// interface item types the comparability of the dynamic values decides: items
// holding slices, maps, or funcs fall back to reflect.DeepEqual rather than
// panicking.
//
// Hashing is deterministic (fixed FNV-1a constants), and supports item types
// built from booleans, integers, floats, complex numbers, strings, pointers,
// channels, interfaces, arrays, and structs. Hashing any other kind panics;
// supply an explicit strategy via [EqualityFunc] for such types.
func StructuralEquality[T any]() Equality[T] { return structuralEquality[T]{} }

func (structuralEquality[T]) Equal(a, b T) bool {
	if !reflect.TypeOf((*T)(nil)).Elem().Comparable() {
		return reflect.DeepEqual(a, b)
	}
	// static comparability is not enough: an interface-typed item (or a
	// struct item with an interface field) may hold an uncomparable dynamic
	// value, which == would panic on
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if !va.Comparable() || !vb.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return any(a) == any(b)
}

func (structuralEquality[T]) Hash(v T) uint64 {
	// addressable value retains interface kinds (and survives nil)
	return hashValue(fnvOffset64, reflect.ValueOf(&v).Elem())
}

// OrderedComparator returns the natural ordering for any ordered type.
func OrderedComparator[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		default:
			return 0
		}
	}
}

// Reverse returns a comparator with the opposite order of cmp.
// A panic occurs if cmp is nil.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	if cmp == nil {
		panic(`collections: nil comparator`)
	}
	return func(a, b T) int { return cmp(b, a) }
}

// naturalComparator derives a Comparator from T's underlying kind, for use
// when a nil Comparator was supplied. Only integer, unsigned integer, float,
// and string kinds have a natural ordering.
func naturalComparator[T any]() (Comparator[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return compareOrdered(reflect.ValueOf(&a).Elem().Int(), reflect.ValueOf(&b).Elem().Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return compareOrdered(reflect.ValueOf(&a).Elem().Uint(), reflect.ValueOf(&b).Elem().Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return compareOrdered(reflect.ValueOf(&a).Elem().Float(), reflect.ValueOf(&b).Elem().Float())
		}, nil
	case reflect.String:
		return func(a, b T) int {
			return compareOrdered(reflect.ValueOf(&a).Elem().String(), reflect.ValueOf(&b).Elem().String())
		}, nil
	default:
		return nil, &CapabilityError{Type: t.String()}
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

func hashUint64(acc, x uint64) uint64 {
	for i := 0; i < 8; i++ {
		acc ^= x & 0xff
		acc *= fnvPrime64
		x >>= 8
	}
	return acc
}

func hashString(acc uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		acc ^= uint64(s[i])
		acc *= fnvPrime64
	}
	return acc
}

func hashValue(acc uint64, v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Invalid:
		return hashUint64(acc, 0)
	case reflect.Bool:
		if v.Bool() {
			return hashUint64(acc, 1)
		}
		return hashUint64(acc, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashUint64(acc, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashUint64(acc, v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashUint64(acc, math.Float64bits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return hashUint64(hashUint64(acc, math.Float64bits(real(c))), math.Float64bits(imag(c)))
	case reflect.String:
		return hashString(acc, v.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return hashUint64(acc, uint64(v.Pointer()))
	case reflect.Interface:
		if v.IsNil() {
			return hashUint64(acc, 0)
		}
		return hashValue(acc, v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			acc = hashValue(acc, v.Index(i))
		}
		return acc
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			acc = hashValue(acc, v.Field(i))
		}
		return acc
	default:
		panic(`collections: item kind is not hashable: ` + v.Kind().String())
	}
}

// isNilItem reports whether item is nil for any nilable kind, including an
// untyped nil stored in an interface-typed item.
func isNilItem(item any) bool {
	if item == nil {
		return true
	}
	switch v := reflect.ValueOf(item); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// typeIsNilable reports whether T has a representation for nil.
func typeIsNilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
