package binarray

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Encoder writes arrays in producer order. WordSize and ByteOrder apply to
// the legacy layout only.
type Encoder struct {
	Format    Format
	WordSize  int
	ByteOrder binary.ByteOrder
}

// NativeEncoder writes what a producer on this platform would write.
func NativeEncoder(format Format) Encoder {
	return Encoder{Format: format, WordSize: NativeWordSize, ByteOrder: binary.NativeEndian}
}

func (e Encoder) Encode(w io.Writer, arr *Array) error {
	if arr.Rank() == 0 {
		return fmt.Errorf("binarray: cannot encode a rank 0 array")
	}
	if arr.Shape.NumElements() != len(arr.Data) {
		return fmt.Errorf("binarray: shape %v does not match %d elements", []int(arr.Shape), len(arr.Data))
	}

	bw := bufio.NewWriter(w)
	var order binary.ByteOrder
	switch e.Format {
	case FormatLegacy:
		if e.WordSize != 4 && e.WordSize != 8 {
			return fmt.Errorf("binarray: unsupported word size %d", e.WordSize)
		}
		order = e.ByteOrder
		if order == nil {
			order = binary.NativeEndian
		}
		if err := writeWord(bw, uint64(arr.Rank()), e.WordSize, order); err != nil {
			return err
		}
		for _, d := range arr.Shape {
			if err := writeWord(bw, uint64(d), e.WordSize, order); err != nil {
				return err
			}
		}
	case FormatV2:
		order = binary.LittleEndian
		if _, err := bw.WriteString(v2Magic); err != nil {
			return err
		}
		var prefix [8]byte
		binary.LittleEndian.PutUint32(prefix[:4], v2Version)
		if _, err := bw.Write(prefix[:]); err != nil {
			return err
		}
		if err := writeWord(bw, uint64(arr.Rank()), 8, order); err != nil {
			return err
		}
		for _, d := range arr.Shape {
			if err := writeWord(bw, uint64(d), 8, order); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("binarray: unknown format %v", e.Format)
	}

	var buf [floatSize]byte
	for _, v := range arr.Data {
		order.PutUint32(buf[:], math.Float32bits(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeWord(w io.Writer, v uint64, ws int, order binary.ByteOrder) error {
	var buf [8]byte
	if ws == 4 {
		if v > math.MaxUint32 {
			return fmt.Errorf("binarray: value %d does not fit a 4-byte word", v)
		}
		order.PutUint32(buf[:4], uint32(v))
	} else {
		order.PutUint64(buf[:], v)
	}
	_, err := w.Write(buf[:ws])
	return err
}

// Encode writes arr natively in the given format.
func Encode(w io.Writer, arr *Array, format Format) error {
	return NativeEncoder(format).Encode(w, arr)
}

// Write creates path and encodes arr into it. A failed write leaves no file
// behind.
func Write(path string, arr *Array, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, arr, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
