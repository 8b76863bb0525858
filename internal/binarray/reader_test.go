package binarray

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legacyBytes(t *testing.T, ws int, order binary.ByteOrder, shape []uint64, data []float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	put := func(v uint64) {
		b := make([]byte, ws)
		if ws == 4 {
			order.PutUint32(b, uint32(v))
		} else {
			order.PutUint64(b, v)
		}
		buf.Write(b)
	}
	put(uint64(len(shape)))
	for _, d := range shape {
		put(d)
	}
	for _, v := range data {
		b := make([]byte, 4)
		order.PutUint32(b, math.Float32bits(v))
		buf.Write(b)
	}
	return buf.Bytes()
}

func seq(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

func TestReadMatrixFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.bin")
	raw := legacyBytes(t, NativeWordSize, binary.NativeEndian, []uint64{2, 5}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, os.WriteFile(path, raw, 0644))

	arr, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, Shape{5, 2}, arr.Shape)
	assert.Equal(t, []float32{1, 6, 2, 7, 3, 8, 4, 9, 5, 10}, arr.Data)
	assert.Equal(t, float32(9), arr.At(3, 1))

	producer, err := ReadRaw(path)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 5}, producer.Shape)
	assert.Equal(t, float32(9), producer.At(1, 3))
}

func TestReadRank3Reorder(t *testing.T) {
	src, err := New(Shape{2, 3, 4}, seq(24))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, FormatLegacy))

	raw, err := Decode(buf.Bytes())
	require.NoError(t, err)
	arr, err := Reorder(raw)
	require.NoError(t, err)

	require.Equal(t, Shape{2, 4, 3}, arr.Shape)
	for c := 0; c < 2; c++ {
		for f := 0; f < 4; f++ {
			for g := 0; g < 3; g++ {
				assert.Equal(t, src.At(c, g, f), arr.At(c, f, g), "index (%d,%d,%d)", c, f, g)
			}
		}
	}
}

func TestRoundTripPreservesElementCount(t *testing.T) {
	shapes := []Shape{{7}, {4, 3}, {2, 5, 6}, {2, 3, 4, 5}}
	for _, format := range []Format{FormatLegacy, FormatV2} {
		for _, shape := range shapes {
			src, err := New(shape, seq(shape.NumElements()))
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "a.bin")
			require.NoError(t, Write(path, src, format))

			arr, err := Read(path)
			require.NoError(t, err, "format %v shape %v", format, shape)
			assert.Equal(t, shape.NumElements(), arr.Shape.NumElements())

			back, err := arr.Permute(ProducerAxes(arr.Rank()))
			require.NoError(t, err)
			assert.Equal(t, src.Shape, back.Shape)
			assert.Equal(t, src.Data, back.Data)
		}
	}
}

func TestDecodeWordSizes(t *testing.T) {
	for _, ws := range []int{4, 8} {
		for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
			raw := legacyBytes(t, ws, order, []uint64{3, 2}, []float32{1.5, -2, 3, 4, 5, 6.25})
			dec := Decoder{WordSize: ws, ByteOrder: order}

			arr, err := dec.Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, Shape{3, 2}, arr.Shape)
			assert.Equal(t, []float32{1.5, -2, 3, 4, 5, 6.25}, arr.Data)

			h, err := dec.Header(raw)
			require.NoError(t, err)
			assert.Equal(t, FormatLegacy, h.Format)
			assert.Equal(t, ws*3, h.DataOffset)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	ws := NativeWordSize
	good := legacyBytes(t, ws, binary.NativeEndian, []uint64{2, 3}, seq(6))

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"short ndims", good[:ws-1], ErrTruncated},
		{"short shape", good[:ws+ws/2], ErrTruncated},
		{"short payload", good[:len(good)-1], ErrTruncated},
		{"trailing bytes", append(append([]byte{}, good...), 0, 0, 0, 0), ErrCorrupt},
		{"zero rank", legacyBytes(t, ws, binary.NativeEndian, nil, nil), ErrCorrupt},
		{"huge rank", legacyBytes(t, ws, binary.NativeEndian, make([]uint64, MaxRank+1), nil), ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)

			var de *DecodeError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestDecodeWordSizeMismatch(t *testing.T) {
	raw := legacyBytes(t, 4, binary.LittleEndian, []uint64{2, 5}, seq(10))
	_, err := Decoder{WordSize: 8, ByteOrder: binary.LittleEndian}.Decode(raw)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestReadNotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadSetsPathOnDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	raw := legacyBytes(t, NativeWordSize, binary.NativeEndian, []uint64{4}, seq(3))
	require.NoError(t, os.WriteFile(path, raw, 0644))

	_, err := Read(path)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, path, de.Path)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadHeader(t *testing.T) {
	src, err := New(Shape{2, 50, 50}, seq(5000))
	require.NoError(t, err)

	for _, format := range []Format{FormatLegacy, FormatV2} {
		path := filepath.Join(t.TempDir(), "mcd.bin")
		require.NoError(t, Write(path, src, format))

		h, err := ReadHeader(path)
		require.NoError(t, err)
		assert.Equal(t, format, h.Format)
		assert.Equal(t, Shape{2, 50, 50}, h.Shape)
		assert.Equal(t, 5000, h.Elements())
	}
}

func TestV2UnknownVersion(t *testing.T) {
	src, err := New(Shape{2}, []float32{1, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, FormatV2))
	raw := buf.Bytes()
	binary.LittleEndian.PutUint32(raw[len(v2Magic):], 9)

	_, err = Decode(raw)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestShapeOverflowOffset(t *testing.T) {
	huge := uint64(1) << 62

	src, err := New(Shape{2, 2}, seq(4))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, FormatV2))
	v2 := buf.Bytes()
	binary.LittleEndian.PutUint64(v2[v2PrefixSize+8:], huge)
	binary.LittleEndian.PutUint64(v2[v2PrefixSize+16:], huge)

	legacy := legacyBytes(t, 8, binary.LittleEndian, []uint64{huge, huge}, nil)

	tests := []struct {
		name   string
		data   []byte
		offset int
	}{
		{"legacy", legacy, 8},
		{"v2", v2, v2PrefixSize + 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decoder{WordSize: 8, ByteOrder: binary.LittleEndian}.Decode(tt.data)
			assert.ErrorIs(t, err, ErrCorrupt)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.offset, de.Offset)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("v2")
	require.NoError(t, err)
	assert.Equal(t, FormatV2, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatLegacy, f)

	_, err = ParseFormat("hdf5")
	assert.Error(t, err)
}
