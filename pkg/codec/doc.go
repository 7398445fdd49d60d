// Package codec converts key/value stores to and from cookie values.
//
// A payload is a run of records, each framed by the NUL separator:
//
//	\x00key:value\x00\x00key2:value2\x00
//
// The run is percent-encoded so the control bytes never reach the wire.
// Signed values prepend a signature and a '-' to the encoded payload:
//
//	<signature>-<percent-encoded payload>
//
// Decoding always goes through the destination's Load method, which leaves
// the destination clean.
package codec
