package pluck

import (
	"bufio"
	"io"
	"strconv"
)

// TextSink writes samples as text, one "<time>\t<sample>" line per sample,
// after a short header giving the sample rate and channel count.
type TextSink struct {
	w   *bufio.Writer
	buf []byte
}

// NewTextSink writes the header to w and returns a sink for the samples that
// follow.  Close must be called to flush the output.
func NewTextSink(w io.Writer, p Params) *TextSink {
	s := &TextSink{w: bufio.NewWriter(w)}
	s.buf = append(s.buf, "; Sample Rate "...)
	s.buf = strconv.AppendFloat(s.buf, p.SampleRate, 'f', -1, 64)
	s.buf = append(s.buf, "\n; Channels 1\n\n"...)
	s.w.Write(s.buf)
	return s
}

func (s *TextSink) Write(t, x float64) error {
	s.buf = strconv.AppendFloat(s.buf[:0], t, 'f', -1, 64)
	s.buf = append(s.buf, '\t')
	s.buf = strconv.AppendFloat(s.buf, x, 'f', -1, 64)
	s.buf = append(s.buf, '\n')
	_, err := s.w.Write(s.buf)
	return err
}

func (s *TextSink) Close() error {
	return s.w.Flush()
}
