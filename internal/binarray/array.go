package binarray

import (
	"fmt"
	"math"
)

// Shape holds the extent of each axis, slowest-varying first.
type Shape []int

// NumElements returns the product of all extents. An empty shape has one
// element.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Strides returns row-major strides: stride[i] is the product of all
// extents after i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// checkedProduct multiplies the extents, reporting false on overflow.
func checkedProduct(dims []uint64) (int, bool) {
	n := uint64(1)
	for _, d := range dims {
		if d != 0 && n > math.MaxInt/d {
			return 0, false
		}
		n *= d
	}
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// Array is a dense row-major float32 array.
type Array struct {
	Shape Shape
	Data  []float32
}

// New wraps data with shape, checking the element count.
func New(shape Shape, data []float32) (*Array, error) {
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("binarray: negative extent %d at axis %d", d, i)
		}
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("binarray: shape %v needs %d elements, got %d", []int(shape), shape.NumElements(), len(data))
	}
	return &Array{Shape: shape.Clone(), Data: data}, nil
}

func (a *Array) Rank() int { return len(a.Shape) }

// At returns the element at the given index; it panics when the index is
// out of range, like a slice access.
func (a *Array) At(idx ...int) float32 {
	if len(idx) != len(a.Shape) {
		panic(fmt.Sprintf("binarray: index rank %d, array rank %d", len(idx), len(a.Shape)))
	}
	strides := a.Shape.Strides()
	flat := 0
	for i, v := range idx {
		if v < 0 || v >= a.Shape[i] {
			panic(fmt.Sprintf("binarray: index %d out of range for axis %d (extent %d)", v, i, a.Shape[i]))
		}
		flat += v * strides[i]
	}
	return a.Data[flat]
}

// Permute returns a copy with axes reordered so that new axis i is old axis
// axes[i].
func (a *Array) Permute(axes []int) (*Array, error) {
	ndim := len(a.Shape)
	if len(axes) != ndim {
		return nil, fmt.Errorf("binarray: permutation %v does not match rank %d", axes, ndim)
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			return nil, fmt.Errorf("binarray: invalid permutation %v", axes)
		}
		seen[ax] = true
	}

	newShape := make(Shape, ndim)
	for i, ax := range axes {
		newShape[i] = a.Shape[ax]
	}
	out := &Array{Shape: newShape, Data: make([]float32, len(a.Data))}
	if len(a.Data) == 0 {
		return out, nil
	}

	oldStrides := a.Shape.Strides()
	idx := make([]int, ndim)
	for i := range out.Data {
		tmp := i
		for j := ndim - 1; j >= 0; j-- {
			idx[j] = tmp % newShape[j]
			tmp /= newShape[j]
		}
		src := 0
		for j := 0; j < ndim; j++ {
			src += idx[j] * oldStrides[axes[j]]
		}
		out.Data[i] = a.Data[src]
	}
	return out, nil
}
