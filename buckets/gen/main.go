// Generator of the carve switch. Buckets are configuration: counts up to 32
// get a bucket of exactly their size, larger counts are served by multiples
// of 32 up to 4096. Run via go generate in the buckets package.
package main

import (
	"bytes"
	"fmt"
	"os"
)

const header = `// Code generated by go run ./gen. DO NOT EDIT.

package buckets

import "github.com/pkg/errors"

// carve places a buffer of the given bucket capacity in its own frame and
// keeps it alive until the consumer returns.
func carve[T, R any](capacity int, consumer func([]T) R) R {
	switch capacity {
	case 0:
		return consumer(nil)
`

const footer = `	default:
		panic(errors.Errorf("buckets: no bucket of capacity %d", capacity))
	}
}
`

func main() {
	capacities := make([]int, 0, 159)
	for n := 1; n <= 32; n++ {
		capacities = append(capacities, n)
	}
	for n := 64; n <= 4096; n += 32 {
		capacities = append(capacities, n)
	}

	buf := &bytes.Buffer{}
	buf.WriteString(header)
	for _, n := range capacities {
		fmt.Fprintf(buf, "\tcase %d:\n\t\tvar buf [%d]T\n\t\treturn consumer(buf[:])\n", n, n)
	}
	buf.WriteString(footer)

	if err := os.WriteFile("table.go", buf.Bytes(), 0o644); err != nil {
		panic(err)
	}
}
