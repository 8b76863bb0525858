package binarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 5}, []int{5, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.Strides(), "shape %v", tt.shape)
	}
}

func TestNewChecksElementCount(t *testing.T) {
	_, err := New(Shape{2, 3}, seq(5))
	assert.Error(t, err)

	_, err = New(Shape{-1, 2}, nil)
	assert.Error(t, err)

	arr, err := New(Shape{0, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, arr.Shape.NumElements())
}

func TestPermute(t *testing.T) {
	arr, err := New(Shape{2, 3}, seq(6))
	require.NoError(t, err)

	tr, err := arr.Permute([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, tr.Shape)
	assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, tr.Data)

	_, err = arr.Permute([]int{0, 0})
	assert.Error(t, err)
	_, err = arr.Permute([]int{0})
	assert.Error(t, err)
}

func TestConsumerAxes(t *testing.T) {
	assert.Equal(t, []int{0}, ConsumerAxes(1))
	assert.Equal(t, []int{1, 0}, ConsumerAxes(2))
	assert.Equal(t, []int{0, 2, 1}, ConsumerAxes(3))
	assert.Equal(t, []int{1, 3, 2, 0}, ConsumerAxes(4))

	for rank := 1; rank <= 5; rank++ {
		fwd, inv := ConsumerAxes(rank), ProducerAxes(rank)
		for i := range fwd {
			assert.Equal(t, i, inv[fwd[i]])
		}
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	arr, err := New(Shape{2, 2}, seq(4))
	require.NoError(t, err)
	assert.Panics(t, func() { arr.At(2, 0) })
	assert.Panics(t, func() { arr.At(0) })
}

func TestConsumerShape(t *testing.T) {
	assert.Equal(t, Shape{5}, ConsumerShape(Shape{5}))
	assert.Equal(t, Shape{5, 2}, ConsumerShape(Shape{2, 5}))
	assert.Equal(t, Shape{2, 4, 3}, ConsumerShape(Shape{2, 3, 4}))
	assert.Equal(t, Shape{3, 5, 4, 2}, ConsumerShape(Shape{2, 3, 4, 5}))
}
