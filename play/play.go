// Package play sends rendered samples to an audio device as they are
// produced.
package play

import "github.com/gordonklaus/pluck"

const framesPerBuffer = 1024

// A Device is a pluck.Sink that plays what is written to it.  Writes block
// while the device's buffer is full.  Close plays out any buffered samples
// and releases the device.
type Device interface {
	pluck.Sink
	Close() error
}

// Open opens the named backend: "portaudio" or "oto".
func Open(backend string, p pluck.Params) (Device, error) {
	switch backend {
	case "portaudio":
		return NewPortAudio(p)
	case "oto":
		return NewOto(p)
	}
	return nil, &pluck.ResourceError{Op: "open audio backend", Path: backend, Err: errUnknownBackend}
}

// frames batches samples into buffers of framesPerBuffer.
type frames struct {
	buf   []float32
	flush func([]float32) error
}

func newFrames(flush func([]float32) error) *frames {
	return &frames{buf: make([]float32, 0, framesPerBuffer), flush: flush}
}

func (f *frames) Write(t, x float64) error {
	f.buf = append(f.buf, float32(x))
	if len(f.buf) < cap(f.buf) {
		return nil
	}
	return f.sync()
}

// sync flushes a partly filled buffer.
func (f *frames) sync() error {
	if len(f.buf) == 0 {
		return nil
	}
	err := f.flush(f.buf)
	f.buf = f.buf[:0]
	return err
}
