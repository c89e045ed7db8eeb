// Package output formats simulation results the way
// _examples/original_source/src/io/output.h does: a brace-delimited
// sparse listing for degree profiles, comma-separated sequences for
// degrees/heights, and fixed-precision decimals for closeness
// centrality. Every Write* function takes an io.Writer; internal/driver
// owns opening the destination file (or stdout) and applying filename
// templating via ConvName.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteDegProfile writes N in the sparse brace format outdegprofile
// uses: only nonzero entries appear, each as "N[i] = v", comma-and-
// newline separated, wrapped in a standalone pair of braces.
func WriteDegProfile(w io.Writer, N []int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "{\n")

	first := true
	for i, v := range N {
		if v <= 0 {
			continue
		}
		if !first {
			fmt.Fprint(bw, ",\n")
		}
		fmt.Fprintf(bw, "N[%d] = %d", i, v)
		first = false
	}

	fmt.Fprint(bw, "\n}\n")
	return bw.Flush()
}

// WriteIntSeq writes seq as a bare comma-space separated list with no
// surrounding braces and no trailing newline, matching outdegseq and
// outheightseq (both of which print the degree or height sequence this
// way, unlike the brace-wrapped outdegprofile/outseq format).
func WriteIntSeq(w io.Writer, seq []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range seq {
		if i > 0 {
			fmt.Fprint(bw, ", ")
		}
		fmt.Fprintf(bw, "%d", v)
	}
	return bw.Flush()
}

// WriteCent writes closeness centrality values, one per vertex, in the
// same "%17.17f" fixed format outcent uses, comma-space separated with
// no braces and no trailing newline. cent[i] must already be the
// normalized closeness value ((n-1)/rawDistanceSum), not the raw sum.
func WriteCent(w io.Writer, cent []float64) error {
	bw := bufio.NewWriter(w)
	for i, v := range cent {
		if i > 0 {
			fmt.Fprint(bw, ", ")
		}
		fmt.Fprintf(bw, "%17.17f", v)
	}
	return bw.Flush()
}

// ConvName resolves a filename template for sample `counter` out of
// `num` total samples. When multi is true, the first '%' byte in
// outfile is replaced by counter, zero-padded to the digit width of
// num, matching convname's in-place substitution; an outfile lacking a
// '%' is an error, same as the source's hard exit(-1). When multi is
// false, outfile is returned unchanged.
func ConvName(outfile string, counter, num int, multi bool) (string, error) {
	if !multi {
		return outfile, nil
	}

	loc := strings.IndexByte(outfile, '%')
	if loc < 0 {
		return "", fmt.Errorf("output: filename %q lacks a %% placeholder required for --num > 1", outfile)
	}

	digits := len(fmt.Sprintf("%d", num))
	padded := fmt.Sprintf("%0*d", digits, counter)

	return outfile[:loc] + padded + outfile[loc+1:], nil
}
