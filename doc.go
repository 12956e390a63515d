// Package animbin decodes and encodes the skeletal animation binary
// format: a set of named animations, each a list of per-bone keyframe
// tracks, each keyframe a 4x4 transform matrix plus an int64 timestamp.
//
// The package exposes high-level Marshal/Unmarshal helpers as well as the
// cursor-level Reader/Writer primitives the format is built from. Decoding
// is a single-shot, synchronous pass over an in-memory buffer; the first
// structural error aborts the decode and no partial result is returned.
package animbin
