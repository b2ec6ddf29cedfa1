// Command lzhfx extracts a file from an lzhf stream.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pierrec/xxHash/xxHash32"

	"github.com/woozymasta/lzhf"
)

const usageText = `usage: lzhfx infile outfile

Decompresses infile, an lzhf stream, into outfile.`

func run(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, usageText)
		return 2
	}

	in, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzhfx: %v\n", err)
		return 1
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzhfx: %v\n", err)
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

	written, err := lzhf.DecompressTo(io.MultiWriter(out, hash), src, nil)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "lzhfx: %v\n", err)
		return 1
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "lzhfx: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "%s %s -> %s\n", color.GreenString("extracted:"), args[0], args[1])
	fmt.Fprintf(os.Stderr, "  out=%d xxh32=%08x\n", written, hash.Sum32())
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
