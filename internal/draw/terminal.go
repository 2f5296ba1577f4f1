package draw

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize bounds a single write to the underlying writer.
const maxChunkSize = 4096

// ChunkWriter accumulates text for terminal output and writes in chunks.
// Use MoveCursor, WriteString, WriteRune to accumulate, then Flush.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.writeInt(row + cw.offRow)
	cw.buf.WriteByte(';')
	cw.writeInt(col + cw.offCol)
	cw.buf.WriteByte('H')
}

// SetColors appends 24-bit foreground and background color sequences.
func (cw *ChunkWriter) SetColors(fg, bg color.RGBA) {
	cw.buf.WriteString("\033[38;2;")
	cw.writeRGB(fg)
	cw.buf.WriteString(";48;2;")
	cw.writeRGB(bg)
	cw.buf.WriteByte('m')
}

func (cw *ChunkWriter) writeRGB(c color.RGBA) {
	cw.writeInt(int(c.R))
	cw.buf.WriteByte(';')
	cw.writeInt(int(c.G))
	cw.buf.WriteByte(';')
	cw.writeInt(int(c.B))
}

func (cw *ChunkWriter) writeInt(n int) {
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(n), 10))
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Len returns the number of buffered bytes not yet flushed.
func (cw *ChunkWriter) Len() int {
	return cw.buf.Len()
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Terminal presents RGBA frames on an ANSI truecolor terminal. Each character cell
// shows two vertically stacked pixels using the upper half block.
type Terminal struct {
	cw       *ChunkWriter
	sizeFunc TermSizeFunc
	cols     int
	rows     int
}

// NewTerminal creates a presenter writing to w, sized by sizeFunc on every frame.
func NewTerminal(w io.Writer, sizeFunc TermSizeFunc) *Terminal {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &Terminal{
		cw:       NewChunkWriter(w, 0, 0),
		sizeFunc: sizeFunc,
	}
}

// Present downsamples frame to fit the terminal, preserving aspect ratio, and
// writes it centered.
func (t *Terminal) Present(frame *image.RGBA) error {
	cols, rows, err := t.sizeFunc()
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	if cols <= 0 || rows <= 0 {
		return nil
	}
	if cols != t.cols || rows != t.rows {
		t.cols, t.rows = cols, rows
		ClearScreen(t.cw)
	}

	fw, fh := frame.Rect.Dx(), frame.Rect.Dy()
	if fw == 0 || fh == 0 {
		return nil
	}

	// Frame pixels per output subpixel; rows carry two subpixels each.
	scale := max(float64(fw)/float64(cols), float64(fh)/float64(rows*2))
	outCols := min(cols, int(float64(fw)/scale))
	outRows := min(rows, int(float64(fh)/scale)/2)
	t.cw.SetOffset((cols-outCols)/2, (rows-outRows)/2)

	sample := func(sx, sy int) color.RGBA {
		x := frame.Rect.Min.X + min(fw-1, int((float64(sx)+0.5)*scale))
		y := frame.Rect.Min.Y + min(fh-1, int((float64(sy)+0.5)*scale))
		return frame.RGBAAt(x, y)
	}

	for row := 0; row < outRows; row++ {
		t.cw.MoveCursor(1, row+1)
		var lastFg, lastBg color.RGBA
		first := true
		for col := 0; col < outCols; col++ {
			fg := sample(col, row*2)
			bg := sample(col, row*2+1)
			if first || fg != lastFg || bg != lastBg {
				t.cw.SetColors(fg, bg)
				lastFg, lastBg = fg, bg
				first = false
			}
			t.cw.WriteRune(BlockUpperHalf)
		}
		t.cw.WriteString("\033[0m")
	}

	return t.cw.Flush()
}
