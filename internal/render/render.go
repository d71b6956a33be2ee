package render

import (
	"fmt"
	"iter"
	"strings"
)

// Seq представление последовательности в виде [a, b, c].
func Seq[T any](seq iter.Seq[T]) string {
	var b strings.Builder
	b.WriteByte('[')

	first := true
	for v := range seq {
		if !first {
			b.WriteString(", ")
		}
		first = false

		_, _ = fmt.Fprint(&b, v)
	}

	b.WriteByte(']')
	return b.String()
}
