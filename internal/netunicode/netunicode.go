package netunicode

import (
	"strconv"
	"strings"
)

// Encode writes seq as netunicode records. The empty sequence encodes to "".
func Encode(seq []string) string {
	var sb strings.Builder
	n := 0
	for _, s := range seq {
		n += len(s) + 12
	}
	sb.Grow(n)
	for _, s := range seq {
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
		sb.WriteByte(',')
	}
	return sb.String()
}

// Append appends the netunicode records of seq to dst.
func Append(dst []byte, seq ...string) []byte {
	for _, s := range seq {
		dst = strconv.AppendInt(dst, int64(len(s)), 10)
		dst = append(dst, ':')
		dst = append(dst, s...)
		dst = append(dst, ',')
	}
	return dst
}

// Option configures decoding.
type Option func(*options)

type options struct {
	keepEmpty bool
}

// KeepEmpty keeps zero-length strings ("0:,") in the decoded sequence.
// By default they are stripped.
func KeepEmpty() Option {
	return func(o *options) { o.keepEmpty = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Decode parses buf from the left and returns the decoded strings and the
// number of bytes consumed. Parsing stops silently at the first malformed
// record; a result with consumed < len(buf) is partial.
//
// The returned slice is nil when no record was parsed.
func Decode(buf string, opts ...Option) ([]string, int) {
	var out []string
	sc := NewScanner(buf, opts...)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Offset()
}

// DecodeStrict is Decode that fails unless the whole buffer is consumed.
func DecodeStrict(buf string, opts ...Option) ([]string, error) {
	var out []string
	sc := NewScanner(buf, opts...)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// IsEncoded reports whether buf is a complete, non-empty netunicode
// sequence holding at least one non-empty string.
func IsEncoded(buf string) bool {
	if buf == "" {
		return false
	}
	sc := NewScanner(buf)
	found := false
	for sc.Scan() {
		found = true
	}
	return found && sc.Err() == nil
}
