package lzhf

import "io"

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own. If opts.MaxInputSize > 0, reading stops just
// past the limit and the call returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	limited := r
	if opts.MaxInputSize > 0 {
		limited = io.LimitReader(r, opts.MaxInputSize+1)
	}
	src, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if opts.MaxInputSize > 0 && int64(len(src)) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}
