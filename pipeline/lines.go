package pipeline

import (
	"bufio"
	"io"
	"iter"

	apperrors "github.com/kbukum/xduce/errors"
	"github.com/kbukum/xduce/xform"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Lines returns the lines of r, without their line endings, as a range. The
// returned func reports the read error that ended the range early, if any.
func Lines(r io.Reader) (iter.Seq[string], func() error) {
	var err error
	seq := func(yield func(string) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
		if serr := sc.Err(); serr != nil {
			err = apperrors.SourceFailed("lines", serr)
		}
	}
	return seq, func() error { return err }
}

// LineWriter writes every appended item to w as a newline-terminated line.
// Output is buffered; call Flush when done. After the first write error all
// further items are dropped and Flush reports that error.
type LineWriter struct {
	w     *bufio.Writer
	lines int64
	err   error
}

var _ xform.Appender[string] = (*LineWriter)(nil)

// NewLineWriter creates a LineWriter on w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// Append writes line followed by a newline.
func (lw *LineWriter) Append(line string) {
	if lw.err != nil {
		return
	}
	if _, err := lw.w.WriteString(line); err != nil {
		lw.err = err
		return
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		lw.err = err
		return
	}
	lw.lines++
}

// Lines returns the number of lines written so far.
func (lw *LineWriter) Lines() int64 { return lw.lines }

// Flush writes any buffered output.
func (lw *LineWriter) Flush() error {
	if lw.err == nil {
		lw.err = lw.w.Flush()
	}
	if lw.err != nil {
		return apperrors.SinkFailed("lines", lw.err)
	}
	return nil
}
