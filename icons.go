package main

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// Color type and filter type, as per the PNG spec. Only truecolor with the
// None filter is ever emitted.
const (
	ctTrueColor = 2
	ftNone      = 0
)

// RGB is one 8-bit-per-channel pixel color.
type RGB struct {
	R, G, B uint8
}

// ColorRule decides the color of each pixel in a generated image.
type ColorRule interface {
	colorAt(x, y, width, height int) RGB
}

// Solid paints every pixel the same color.
type Solid struct {
	Color RGB
}

func (s Solid) colorAt(x, y, width, height int) RGB { return s.Color }

// Gradient interpolates linearly from Top at row 0 toward Bottom at the last
// row, with a solid Accent block over the bottom-right corner.
type Gradient struct {
	Top    RGB
	Bottom RGB
	Accent RGB
}

func (g Gradient) colorAt(x, y, width, height int) RGB {
	// Accent applies strictly past the 75% mark on both axes; a pixel
	// exactly on the boundary keeps the gradient color.
	if float64(x) > float64(width)*0.75 && float64(y) > float64(height)*0.75 {
		return g.Accent
	}
	ratio := float64(y) / float64(height)
	return RGB{
		R: lerp(g.Top.R, g.Bottom.R, ratio),
		G: lerp(g.Top.G, g.Bottom.G, ratio),
		B: lerp(g.Top.B, g.Bottom.B, ratio),
	}
}

// lerp mixes one channel, truncating toward zero.
func lerp(a, b uint8, ratio float64) uint8 {
	return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
}

// An encoder accumulates PNG chunks onto w. The first error sticks and turns
// every later write into a no-op, so callers check err once at the end.
type encoder struct {
	w      io.Writer
	err    error
	header [8]byte
	footer [4]byte
}

func (e *encoder) writeChunk(b []byte, name string) {
	if e.err != nil {
		return
	}
	n := uint32(len(b))
	if int(n) != len(b) {
		e.err = errors.New(name + " chunk is too large: " + strconv.Itoa(len(b)))
		return
	}
	binary.BigEndian.PutUint32(e.header[:4], n)
	copy(e.header[4:8], name)
	crc := crc32.NewIEEE()
	crc.Write(e.header[4:8])
	crc.Write(b)
	binary.BigEndian.PutUint32(e.footer[:4], crc.Sum32())

	if _, e.err = e.w.Write(e.header[:8]); e.err != nil {
		return
	}
	if _, e.err = e.w.Write(b); e.err != nil {
		return
	}
	_, e.err = e.w.Write(e.footer[:4])
}

func (e *encoder) writeIHDR(width, height int) {
	var b [13]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(width))
	binary.BigEndian.PutUint32(b[4:8], uint32(height))
	b[8] = 8 // bit depth
	b[9] = ctTrueColor
	b[10] = 0 // default compression method
	b[11] = 0 // default filter method
	b[12] = 0 // non-interlaced
	e.writeChunk(b[:], "IHDR")
}

// scanlines serializes the image as raw PNG scanlines: a filter-type byte
// (always None) followed by width RGB triples, for each row.
func scanlines(width, height int, rule ColorRule) []byte {
	raw := make([]byte, 0, height*(1+3*width))
	for y := 0; y < height; y++ {
		raw = append(raw, ftNone)
		for x := 0; x < width; x++ {
			c := rule.colorAt(x, y, width, height)
			raw = append(raw, c.R, c.G, c.B)
		}
	}
	return raw
}

// writeIDAT deflates the whole scanline buffer at maximum effort and emits it
// as a single IDAT chunk, however large the image.
func (e *encoder) writeIDAT(width, height int, rule ColorRule) {
	if e.err != nil {
		return
	}
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		e.err = err
		return
	}
	if _, err := zw.Write(scanlines(width, height, rule)); err != nil {
		e.err = err
		return
	}
	if err := zw.Close(); err != nil {
		e.err = err
		return
	}
	e.writeChunk(buf.Bytes(), "IDAT")
}

func (e *encoder) writeIEND() { e.writeChunk(nil, "IEND") }

// generatePNG writes a complete minimal PNG to w: signature, IHDR, one IDAT,
// IEND. 8-bit truecolor, no alpha, no interlace.
func generatePNG(width, height int, rule ColorRule, w io.Writer) error {
	if _, err := io.WriteString(w, pngHeader); err != nil {
		return err
	}
	e := &encoder{w: w}
	e.writeIHDR(width, height)
	e.writeIDAT(width, height, rule)
	e.writeIEND()
	return e.err
}

// writeIcon renders one icon to path, creating parent directories as needed
// and overwriting any existing file.
func writeIcon(width, height int, rule ColorRule, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := generatePNG(width, height, rule, f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
