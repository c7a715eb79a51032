package netunicode

import "strings"

// Scanner reads netunicode records one at a time. Successive calls to Scan
// step through the records of the buffer; scanning stops at the end of the
// buffer or at the first malformed record.
type Scanner struct {
	buf  string
	pos  int
	text string
	err  error
	opts options
	done bool
}

// NewScanner returns a Scanner reading from buf.
func NewScanner(buf string, opts ...Option) *Scanner {
	return &Scanner{buf: buf, opts: buildOptions(opts)}
}

// Scan advances to the next record, which is then available through Text.
// Empty strings are skipped unless KeepEmpty was given.
func (s *Scanner) Scan() bool {
	for !s.done && s.pos < len(s.buf) {
		text, next, err := record(s.buf, s.pos)
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		s.pos = next
		if text == "" && !s.opts.keepEmpty {
			continue
		}
		s.text = text
		return true
	}
	s.done = true
	return false
}

// Text returns the string read by the most recent call to Scan.
func (s *Scanner) Text() string {
	return s.text
}

// Offset returns the number of bytes consumed so far.
func (s *Scanner) Offset() int {
	return s.pos
}

// Err returns the syntax error that stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

// record parses the record starting at prev and returns its string and the
// offset just past its trailing comma.
func record(buf string, prev int) (string, int, error) {
	colon := strings.IndexByte(buf[prev:], ':')
	if colon < 0 {
		return "", prev, &SyntaxError{Offset: prev, Reason: ReasonMissingColon}
	}
	if colon == 0 {
		return "", prev, &SyntaxError{Offset: prev, Reason: ReasonBadLength}
	}
	colon += prev

	length := 0
	for i := prev; i < colon; i++ {
		c := buf[i]
		if c < '0' || c > '9' {
			return "", prev, &SyntaxError{Offset: prev, Reason: ReasonBadLength}
		}
		length = length*10 + int(c-'0')
		if length > len(buf) {
			return "", prev, &SyntaxError{Offset: prev, Reason: ReasonTruncated}
		}
	}

	comma := colon + 1 + length
	if comma >= len(buf) {
		return "", prev, &SyntaxError{Offset: prev, Reason: ReasonTruncated}
	}
	if buf[comma] != ',' {
		return "", prev, &SyntaxError{Offset: comma, Reason: ReasonMissingComma}
	}
	return buf[colon+1 : comma], comma + 1, nil
}
