package graph

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Weight is the numeric constraint edge weights and path distances must
// satisfy: a strict total order (via the built-in comparison operators),
// a zero value, and a computable maximum sentinel. Mirrors spec.md's
// "generic numeric with total order, zero, and max sentinel" trait.
type Weight interface {
	constraints.Integer | constraints.Float
}

// MaxWeight returns the largest representable value of W, used to seed
// "infeasible" distances before Dijkstra/Prim discover a real one. It
// reuses the bit-width-via-reflection trick the teacher's radix.go uses
// to size its bucket array (reflect.TypeOf(...).Bits()), extended to
// cover signed integers and floats rather than radix's unsigned-only
// case.
func MaxWeight[W Weight]() W {
	var zero W
	kind := reflect.TypeOf(zero).Kind()
	switch kind {
	case reflect.Float32:
		return W(math.MaxFloat32)
	case reflect.Float64:
		return W(math.MaxFloat64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := reflect.TypeOf(zero).Bits()
		return W(int64(1)<<(bits-1) - 1)
	default: // unsigned integers
		bits := reflect.TypeOf(zero).Bits()
		if bits >= 64 {
			return W(uint64(math.MaxUint64))
		}
		return W(uint64(1)<<bits - 1)
	}
}

// ZeroWeight returns the zero value of W.
func ZeroWeight[W Weight]() W {
	var zero W
	return zero
}
