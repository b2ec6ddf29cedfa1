package lzhf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestAPIContract_DecompressAllowsTrailingBytes(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	compressed, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	payload := append(append([]byte{}, compressed...), []byte("tail")...)
	out, err := Decompress(payload, nil)
	if err != nil {
		t.Fatalf("Decompress with trailing bytes failed: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatal("round-trip mismatch with trailing bytes")
	}
}

// Hand-assembled streams pin the wire format down: once written, files must
// stay readable by every later release.
func TestAPIContract_DecompressCanonicalStreams(t *testing.T) {
	t.Run("zero-run", func(t *testing.T) {
		// One long match against the pre-zeroed window: prefix 1,
		// folded length 111 0 11 (20 bytes), position 4095 in 12 bits.
		compressed := append(fileStamp{size: 20, windowBits: 12}.appendTo(nil), 0xF7, 0xFF, 0xE0)

		out, err := Decompress(compressed, nil)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, make([]byte, 20)) {
			t.Fatalf("decoded % x, want twenty zero bytes", out)
		}
	})

	t.Run("single-literal", func(t *testing.T) {
		// Literal 'A': prefix 00, empty escape path, raw rank 0x41.
		compressed := append(fileStamp{size: 1, windowBits: 17}.appendTo(nil), 0x10, 0x40)

		out, err := Decompress(compressed, nil)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, []byte("A")) {
			t.Fatalf("decoded % x, want 41", out)
		}
	})

	t.Run("empty", func(t *testing.T) {
		compressed := fileStamp{size: 0, windowBits: 17}.appendTo(nil)

		out, err := Decompress(compressed, nil)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("decoded %d bytes from an empty stream", len(out))
		}
	})
}

// Compression must reproduce the canonical streams bit for bit; the encoder
// side of the format is as frozen as the decoder side.
func TestAPIContract_CompressCanonicalStreams(t *testing.T) {
	got, err := Compress(make([]byte, 20), &CompressOptions{WindowBits: 12})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	want := append(fileStamp{size: 20, windowBits: 12}.appendTo(nil), 0xF7, 0xFF, 0xE0)
	if !bytes.Equal(got, want) {
		t.Fatalf("zero-run stream = % x, want % x", got, want)
	}

	got, err = Compress([]byte("A"), &CompressOptions{WindowBits: 17})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	want = append(fileStamp{size: 1, windowBits: 17}.appendTo(nil), 0x10, 0x40)
	if !bytes.Equal(got, want) {
		t.Fatalf("single-literal stream = % x, want % x", got, want)
	}
}

func TestAPIContract_FileRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("file round trip through CompressTo and DecompressTo\n"), 300)

	dir := t.TempDir()
	packedPath := filepath.Join(dir, "data.lzu")

	f, err := os.Create(packedPath)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	written, err := CompressTo(f, bytes.NewReader(data), &CompressOptions{WindowBits: 13})
	if err != nil {
		t.Fatalf("CompressTo failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	packed, err := os.ReadFile(packedPath)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if int64(len(packed)) != written {
		t.Fatalf("CompressTo reported %d bytes, file holds %d", written, len(packed))
	}

	// The size field is written last, by seeking back over the stamp.
	st, err := parseStamp(packed)
	if err != nil {
		t.Fatalf("parseStamp failed: %v", err)
	}
	if st.size != uint64(len(data)) {
		t.Fatalf("stamp size = %d, want %d", st.size, len(data))
	}

	rf, err := os.Open(packedPath)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rf.Close()

	var out bytes.Buffer
	n, err := DecompressTo(&out, rf, nil)
	if err != nil {
		t.Fatalf("DecompressTo failed: %v", err)
	}
	if n != int64(len(data)) {
		t.Fatalf("DecompressTo reported %d bytes, want %d", n, len(data))
	}
	if !bytes.Equal(out.Bytes(), data) {
		t.Fatal("file round-trip mismatch")
	}
}
