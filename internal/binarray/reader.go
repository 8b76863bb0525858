package binarray

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"math/bits"
	"os"
)

// NativeWordSize is the width in bytes of the header integers this process
// expects from legacy files: the producer's size_t on the same platform.
const NativeWordSize = bits.UintSize / 8

// MaxRank bounds the rank accepted from a header. A producer with a different
// word size almost always yields a huge ndims, so this guard is where most
// word-size mismatches surface.
const MaxRank = 32

const (
	floatSize = 4

	v2Magic      = "TRAJBIN\x00"
	v2Version    = 1
	v2PrefixSize = len(v2Magic) + 4 + 4
)

// Format identifies an on-disk layout.
type Format int

const (
	FormatLegacy Format = iota
	FormatV2
)

func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatV2:
		return "v2"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a name accepted on the command line to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "legacy":
		return FormatLegacy, nil
	case "v2":
		return FormatV2, nil
	default:
		return 0, fmt.Errorf("unknown format: %s (available: legacy, v2)", name)
	}
}

// Header describes an array without its payload.
type Header struct {
	Format     Format
	WordSize   int
	Shape      Shape
	DataOffset int
}

// Elements is the number of float32 values the header declares.
func (h Header) Elements() int { return h.Shape.NumElements() }

// Decoder parses both layouts. WordSize and ByteOrder apply to legacy
// files only; v2 is always 8-byte little-endian.
type Decoder struct {
	WordSize  int
	ByteOrder binary.ByteOrder
}

// NativeDecoder matches a producer running on the same platform.
func NativeDecoder() Decoder {
	return Decoder{WordSize: NativeWordSize, ByteOrder: binary.NativeEndian}
}

// Header parses the header at the start of data.
func (d Decoder) Header(data []byte) (Header, error) {
	if len(data) >= len(v2Magic) && string(data[:len(v2Magic)]) == v2Magic {
		return d.headerV2(data)
	}
	return d.headerLegacy(data)
}

func (d Decoder) headerLegacy(data []byte) (Header, error) {
	ws := d.WordSize
	if ws != 4 && ws != 8 {
		return Header{}, fmt.Errorf("binarray: unsupported word size %d", ws)
	}
	order := d.ByteOrder
	if order == nil {
		order = binary.NativeEndian
	}

	if len(data) < ws {
		return Header{}, &DecodeError{Offset: 0, Err: fmt.Errorf("%w: need %d bytes for ndims, have %d", ErrTruncated, ws, len(data))}
	}
	ndims := readWord(data, ws, order)
	dims, err := readShape(data, ws, ws, ndims, order)
	if err != nil {
		return Header{}, err
	}
	return newHeader(FormatLegacy, ws, dims, ws, ws+int(ndims)*ws)
}

func (d Decoder) headerV2(data []byte) (Header, error) {
	if len(data) < v2PrefixSize+8 {
		return Header{}, &DecodeError{Offset: 0, Err: fmt.Errorf("%w: v2 header needs %d bytes, have %d", ErrTruncated, v2PrefixSize+8, len(data))}
	}
	version := binary.LittleEndian.Uint32(data[len(v2Magic):])
	if version != v2Version {
		return Header{}, &DecodeError{Offset: len(v2Magic), Err: fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)}
	}
	ndims := binary.LittleEndian.Uint64(data[v2PrefixSize:])
	dims, err := readShape(data, v2PrefixSize+8, 8, ndims, binary.LittleEndian)
	if err != nil {
		return Header{}, err
	}
	return newHeader(FormatV2, 8, dims, v2PrefixSize+8, v2PrefixSize+8+int(ndims)*8)
}

func readShape(data []byte, off, ws int, ndims uint64, order binary.ByteOrder) ([]uint64, error) {
	if ndims == 0 {
		return nil, &DecodeError{Offset: off - ws, Err: fmt.Errorf("%w: zero rank", ErrCorrupt)}
	}
	if ndims > MaxRank {
		return nil, &DecodeError{Offset: off - ws, Err: fmt.Errorf("%w: rank %d exceeds %d (word size mismatch?)", ErrCorrupt, ndims, MaxRank)}
	}
	need := off + int(ndims)*ws
	if len(data) < need {
		return nil, &DecodeError{Offset: off, Err: fmt.Errorf("%w: shape needs %d bytes, have %d", ErrTruncated, int(ndims)*ws, len(data)-off)}
	}
	dims := make([]uint64, ndims)
	for i := range dims {
		dims[i] = readWord(data[off+i*ws:], ws, order)
	}
	return dims, nil
}

// newHeader builds a header from dims read at shapeOffset.
func newHeader(format Format, ws int, dims []uint64, shapeOffset, dataOffset int) (Header, error) {
	n, ok := checkedProduct(dims)
	if !ok || n > math.MaxInt/floatSize {
		return Header{}, &DecodeError{Offset: shapeOffset, Err: fmt.Errorf("%w: shape %v overflows", ErrCorrupt, dims)}
	}
	shape := make(Shape, len(dims))
	for i, d := range dims {
		shape[i] = int(d)
	}
	return Header{Format: format, WordSize: ws, Shape: shape, DataOffset: dataOffset}, nil
}

func readWord(b []byte, ws int, order binary.ByteOrder) uint64 {
	if ws == 4 {
		return uint64(order.Uint32(b))
	}
	return order.Uint64(b)
}

// checkPayload verifies the payload holds exactly the declared elements.
func (h Header) checkPayload(payload int) error {
	want := h.Elements() * floatSize
	switch {
	case payload < want:
		return &DecodeError{Offset: h.DataOffset + payload, Err: fmt.Errorf("%w: shape %v needs %d data bytes, have %d", ErrTruncated, []int(h.Shape), want, payload)}
	case payload > want:
		return &DecodeError{Offset: h.DataOffset + want, Err: fmt.Errorf("%w: %d trailing bytes after shape %v", ErrCorrupt, payload-want, []int(h.Shape))}
	}
	return nil
}

// Decode parses a whole file image in producer order.
func (d Decoder) Decode(data []byte) (*Array, error) {
	h, err := d.Header(data)
	if err != nil {
		return nil, err
	}
	if err := h.checkPayload(len(data) - h.DataOffset); err != nil {
		return nil, err
	}

	var order binary.ByteOrder = binary.LittleEndian
	if h.Format == FormatLegacy {
		order = d.ByteOrder
		if order == nil {
			order = binary.NativeEndian
		}
	}

	values := make([]float32, h.Elements())
	payload := data[h.DataOffset:]
	for i := range values {
		values[i] = math.Float32frombits(order.Uint32(payload[i*floatSize:]))
	}
	return &Array{Shape: h.Shape, Data: values}, nil
}

// Decode parses data with the native decoder, in producer order.
func Decode(data []byte) (*Array, error) {
	return NativeDecoder().Decode(data)
}

// ReadRaw loads path in producer order.
func ReadRaw(path string) (*Array, error) {
	return NativeDecoder().ReadRaw(path)
}

// Read loads path and reorders it into consumer order.
func Read(path string) (*Array, error) {
	return NativeDecoder().Read(path)
}

func (d Decoder) ReadRaw(path string) (*Array, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, openError(path, err)
	}
	arr, err := d.Decode(data)
	if err != nil {
		return nil, withPath(path, err)
	}
	return arr, nil
}

func (d Decoder) Read(path string) (*Array, error) {
	arr, err := d.ReadRaw(path)
	if err != nil {
		return nil, err
	}
	return Reorder(arr)
}

// ReadHeader parses only the header of path and checks the file size
// against it.
func (d Decoder) ReadHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, openError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Header{}, err
	}

	limit := int64(v2PrefixSize + 8 + MaxRank*8)
	if info.Size() < limit {
		limit = info.Size()
	}
	prefix := make([]byte, limit)
	if _, err := io.ReadFull(f, prefix); err != nil {
		return Header{}, fmt.Errorf("%s: %w", path, err)
	}

	h, err := d.Header(prefix)
	if err != nil {
		return Header{}, withPath(path, err)
	}
	if err := h.checkPayload(int(info.Size()) - h.DataOffset); err != nil {
		return Header{}, withPath(path, err)
	}
	return h, nil
}

// ReadHeader parses the header of path with the native decoder.
func ReadHeader(path string) (Header, error) {
	return NativeDecoder().ReadHeader(path)
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return err
}

func withPath(path string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		de.Path = path
	}
	return err
}
