package strmetric

import (
	"bytes"
	"compress/zlib"
	"fmt"

	"github.com/dsnet/compress/bzip2"
	"github.com/ulikunitz/xz/lzma"
)

// binaryCodec wraps a real byte-oriented compressor as a Compressor: the
// input string is UTF-8-encoded, compressed, and its constant header
// stripped before measuring length (spec §4.10, "binary compressors encode
// strings as UTF-8 before compression; their compressed output strips the
// codec header... to remove constant overhead").
type binaryCodec struct {
	name      string
	headerLen int
	compress  func(data []byte) ([]byte, error)
}

func (c binaryCodec) Name() string { return c.name }

func (c binaryCodec) Size(data string) (float64, error) {
	out, err := c.compress([]byte(data))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrUnsupportedBackend, c.name, err)
	}
	if len(out) <= c.headerLen {
		return 0, nil
	}
	return float64(len(out) - c.headerLen), nil
}

// NewBZ2Compressor wraps github.com/dsnet/compress/bzip2, a read+write
// bzip2 implementation (the standard library's compress/bzip2 is
// decompress-only), stripping the 15-byte header per spec §4.10.
func NewBZ2Compressor() Compressor {
	return binaryCodec{
		name:      "bz2",
		headerLen: 15,
		compress: func(data []byte) ([]byte, error) {
			var buf bytes.Buffer
			w, err := bzip2.NewWriter(&buf, nil)
			if err != nil {
				return nil, err
			}
			if _, err := w.Write(data); err != nil {
				return nil, err
			}
			if err := w.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}

// NewLZMACompressor wraps github.com/ulikunitz/xz/lzma, stripping the
// 14-byte header per spec §4.10. Construction never fails for this; only an
// actual compress call can surface ErrUnsupportedBackend (spec §7, error
// kind 1), matching "Lzma-NCD raises... only when actually invoked".
func NewLZMACompressor() Compressor {
	return binaryCodec{
		name:      "lzma",
		headerLen: 14,
		compress: func(data []byte) ([]byte, error) {
			var buf bytes.Buffer
			w, err := lzma.NewWriter(&buf)
			if err != nil {
				return nil, err
			}
			if _, err := w.Write(data); err != nil {
				return nil, err
			}
			if err := w.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}

// NewZlibCompressor wraps the standard library's compress/zlib, stripping
// its 2-byte header per spec §4.10. No third-party zlib codec is wired:
// compress/zlib already provides a complete writer and reader, unlike
// compress/bzip2 (read-only) and the absence of an lzma package in the
// standard library, so there is nothing a third-party replacement would add
// here (see DESIGN.md).
func NewZlibCompressor() Compressor {
	return binaryCodec{
		name:      "zlib",
		headerLen: 2,
		compress: func(data []byte) ([]byte, error) {
			var buf bytes.Buffer
			w := zlib.NewWriter(&buf)
			if _, err := w.Write(data); err != nil {
				return nil, err
			}
			if err := w.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}
