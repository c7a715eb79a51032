// Package netunicode implements the length-prefixed string sequence format
// used to spell compound public names.
//
// A sequence is written as a concatenation of records:
//
//	<decimal-length>:<bytes>,
//
// The explicit length makes the record self-delimiting: no escaping is
// needed and a ':' or ',' inside a string never confuses the parser.
// Lengths count bytes of the Go string.
//
// Decoding is lenient by default. Decode stops at the first malformed
// record and returns what it parsed so far together with the number of
// bytes consumed; callers that need strictness compare that count with the
// buffer length, or use DecodeStrict.
package netunicode
