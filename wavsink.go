package pluck

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavChunk = 4096

// WAVSink writes samples to a mono PCM WAV file.  Samples are clipped to
// [-1, 1].
type WAVSink struct {
	enc   *wav.Encoder
	buf   *audio.IntBuffer
	scale float64
}

// NewWAVSink returns a sink writing bitDepth-bit samples (16 or 24) to w.
// Close must be called to complete the file; it does not close w.
func NewWAVSink(w io.WriteSeeker, p Params, bitDepth int) (*WAVSink, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("unsupported WAV bit depth %d", bitDepth)
	}
	rate := int(p.SampleRate)
	return &WAVSink{
		enc: wav.NewEncoder(w, rate, bitDepth, 1, 1),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
			Data:           make([]int, 0, wavChunk),
			SourceBitDepth: bitDepth,
		},
		scale: float64(int(1)<<(bitDepth-1) - 1),
	}, nil
}

func (s *WAVSink) Write(t, x float64) error {
	x = math.Max(-1, math.Min(1, x))
	s.buf.Data = append(s.buf.Data, int(math.Round(x*s.scale)))
	if len(s.buf.Data) == wavChunk {
		return s.flush()
	}
	return nil
}

func (s *WAVSink) flush() error {
	if len(s.buf.Data) == 0 {
		return nil
	}
	err := s.enc.Write(s.buf)
	s.buf.Data = s.buf.Data[:0]
	return err
}

func (s *WAVSink) Close() error {
	if err := s.flush(); err != nil {
		return err
	}
	return s.enc.Close()
}
