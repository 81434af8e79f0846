package sourcesink

import (
	"fmt"
	"io"
)

// AppendTo returns a sink that appends every element to slice.
// The sink never stops its source.
func AppendTo[T any](slice *[]T) SinkFunc[T] {
	return func(elem T) bool {
		*slice = append(*slice, elem)
		return false
	}
}

// SendTo returns a sink that sends every element through ch.
// The sink never stops its source, and blocks while ch is not ready to receive.
func SendTo[T any](ch chan<- T) SinkFunc[T] {
	return func(elem T) bool {
		ch <- elem
		return false
	}
}

// WriteTo returns a sink that writes every element to w, formatted using the default format
// and followed by a newline.
// If writing fails, the sink stores the error in err and stops its source.
func WriteTo[T any](w io.Writer, err *error) SinkFunc[T] {
	return func(elem T) bool {
		if _, writeErr := fmt.Fprintln(w, elem); writeErr != nil {
			*err = writeErr
			return true
		}

		return false
	}
}
