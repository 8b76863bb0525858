// Package trajectory turns decoded arrays into per-frame x/y series and
// provides the analytical reference they are compared against.
package trajectory

import (
	"errors"
	"fmt"

	"github.com/san-kum/trajview/internal/binarray"
)

var (
	// ErrRank indicates an array without separate channel and frame axes.
	ErrRank = errors.New("trajectory: array rank must be at least 2")

	// ErrChannels indicates fewer than the two channels needed for x and y.
	ErrChannels = errors.New("trajectory: need at least two channels (x, y)")

	// ErrFeature indicates a feature index outside the array.
	ErrFeature = errors.New("trajectory: feature index out of range")
)

// Trajectory is a consumer-ordered array: [channel, frame, feature...].
type Trajectory struct {
	arr *binarray.Array
}

func New(arr *binarray.Array) (*Trajectory, error) {
	if arr.Rank() < 2 {
		return nil, fmt.Errorf("%w: got shape %v", ErrRank, []int(arr.Shape))
	}
	if arr.Shape[0] < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrChannels, arr.Shape[0])
	}
	return &Trajectory{arr: arr}, nil
}

// Load reads path with the binarray reader and wraps the result.
func Load(path string) (*Trajectory, error) {
	arr, err := binarray.Read(path)
	if err != nil {
		return nil, err
	}
	return New(arr)
}

func (t *Trajectory) Shape() binarray.Shape { return t.arr.Shape.Clone() }
func (t *Trajectory) Channels() int         { return t.arr.Shape[0] }
func (t *Trajectory) Frames() int           { return t.arr.Shape[1] }

// Features is the number of sub-elements per frame; 1 for rank 2 arrays.
func (t *Trajectory) Features() int {
	return binarray.Shape(t.arr.Shape[2:]).NumElements()
}

// Channel returns one value per frame for channel c, taking the given
// flattened feature index from each frame.
func (t *Trajectory) Channel(c, feature int) ([]float64, error) {
	if c < 0 || c >= t.Channels() {
		return nil, fmt.Errorf("trajectory: channel %d out of range [0, %d)", c, t.Channels())
	}
	nf := t.Features()
	if feature < 0 || feature >= nf {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFeature, feature, nf)
	}

	frames := t.Frames()
	out := make([]float64, frames)
	base := c * frames * nf
	for f := range out {
		out[f] = float64(t.arr.Data[base+f*nf+feature])
	}
	return out, nil
}

// Series extracts channel 0 as x and channel 1 as y.
func (t *Trajectory) Series(name string, feature int) (Series, error) {
	x, err := t.Channel(0, feature)
	if err != nil {
		return Series{}, err
	}
	y, err := t.Channel(1, feature)
	if err != nil {
		return Series{}, err
	}
	return Series{Name: name, X: x, Y: y}, nil
}
