package text

import "fmt"

// TextSpan is a half-open byte range [Start, Start+Length) into a source string
type TextSpan struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// NewSpan creates a span from a start offset and a length
func NewSpan(start, length int) TextSpan {
	return TextSpan{Start: start, Length: length}
}

// FromBounds creates a span covering [start, end)
func FromBounds(start, end int) TextSpan {
	return TextSpan{Start: start, Length: end - start}
}

// End returns the offset one past the last byte of the span
func (s TextSpan) End() int {
	return s.Start + s.Length
}

func (s TextSpan) String() string {
	return fmt.Sprintf("(%d, %d)", s.Start, s.Length)
}
