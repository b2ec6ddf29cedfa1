// Command lzhf compresses a file into an lzhf stream.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pierrec/xxHash/xxHash32"

	"github.com/woozymasta/lzhf"
)

const usageText = `usage: lzhf [-N] infile outfile

Compresses infile into outfile. N picks the sliding-window exponent
(12..20, default 17); out-of-range values are clamped.`

// countingReader counts the bytes the compressor pulls from the source.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func run(args []string) int {
	bits := lzhf.DefaultWindowBits
	if len(args) == 3 {
		arg := args[0]
		if !strings.HasPrefix(arg, "-") {
			fmt.Fprintln(os.Stderr, usageText)
			return 2
		}
		n, err := strconv.Atoi(arg[1:])
		if err != nil || n <= 0 {
			fmt.Fprintln(os.Stderr, usageText)
			return 2
		}
		bits = n
		args = args[1:]
	}
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, usageText)
		return 2
	}

	in, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzhf: %v\n", err)
		return 1
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzhf: %v\n", err)
		return 1
	}

	var src io.Reader = in
	var bar *pb.ProgressBar
	if fi, err := in.Stat(); err == nil && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = pb.New64(fi.Size())
		bar.Set(pb.Bytes, true)
		bar.SetWriter(os.Stderr)
		bar.Start()
		src = bar.NewProxyReader(in)
	}

	hash := xxHash32.New(0)
	counted := &countingReader{r: io.TeeReader(src, hash)}

	written, err := lzhf.CompressTo(out, counted, &lzhf.CompressOptions{WindowBits: bits})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "lzhf: %v\n", err)
		return 1
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "lzhf: %v\n", err)
		return 1
	}

	saved := 0.0
	if counted.n > 0 {
		saved = 100 * (1 - float64(written)/float64(counted.n))
	}
	used := min(max(bits, lzhf.MinWindowBits), lzhf.MaxWindowBits)

	fmt.Fprintf(os.Stderr, "%s %s -> %s\n", color.GreenString("compressed:"), args[0], args[1])
	fmt.Fprintf(os.Stderr, "  in=%d out=%d saved=%.2f%% window=2^%d xxh32=%08x\n",
		counted.n, written, saved, used, hash.Sum32())
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
