package binarray

// ConsumerAxes returns the permutation that turns a producer-ordered array of
// the given rank into consumer order.
//
// The consumer first reverses every axis (a full transpose). Rank 3 arrays
// are then rotated so reversed axis 2 comes first, which nets out to
// producer axes (0, 2, 1): the channel axis stays in front and the remaining
// two swap. Higher ranks apply the same rotation to the reversed axes.
func ConsumerAxes(rank int) []int {
	axes := make([]int, rank)
	for i := range axes {
		axes[i] = rank - 1 - i
	}
	if rank < 3 {
		return axes
	}
	rotated := make([]int, 0, rank)
	rotated = append(rotated, axes[2], axes[0], axes[1])
	rotated = append(rotated, axes[3:]...)
	return rotated
}

// ProducerAxes is the inverse of ConsumerAxes.
func ProducerAxes(rank int) []int {
	fwd := ConsumerAxes(rank)
	inv := make([]int, rank)
	for i, ax := range fwd {
		inv[ax] = i
	}
	return inv
}

// Reorder returns arr permuted into consumer order.
func Reorder(arr *Array) (*Array, error) {
	return arr.Permute(ConsumerAxes(arr.Rank()))
}

// ConsumerShape is s with its extents in consumer order.
func ConsumerShape(s Shape) Shape {
	out := make(Shape, len(s))
	for i, ax := range ConsumerAxes(len(s)) {
		out[i] = s[ax]
	}
	return out
}
