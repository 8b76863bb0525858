// Package binarray decodes the flat binary arrays written by the simulation
// producers.
//
// The legacy layout carries no magic number and no version:
//
//	[ndims : word][shape[0..ndims) : word][data[0..prod(shape)) : float32]
//
// where word is the native unsigned integer width of the writing process
// (4 or 8 bytes) and all values use the native byte order. The reader assumes
// its own [NativeWordSize] matches the producer; a mismatch cannot be
// detected and usually surfaces as [ErrCorrupt] through the [MaxRank] guard.
//
// The v2 layout prefixes the same data with a magic string and fixed 8-byte
// little-endian counts:
//
//	["TRAJBIN\x00"][version : u32][reserved : u32][ndims : u64][shape : u64...][data : float32...]
//
// [Decode] detects v2 by its magic; everything else is parsed as legacy.
//
// # Axis order
//
// [Read] returns arrays in consumer order ([channel, frame, feature]), see
// [ConsumerAxes]. [ReadRaw] keeps the producer's order.
//
// # Memory
//
// Files are materialized whole; memory use is proportional to file size.
package binarray
