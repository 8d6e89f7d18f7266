package play

import (
	"github.com/gordonklaus/pluck"
	"github.com/gordonklaus/portaudio"
)

// PortAudio plays on the default output device through a blocking
// PortAudio stream.
type PortAudio struct {
	*frames
	stream *portaudio.Stream
	out    []float32
}

func NewPortAudio(p pluck.Params) (*PortAudio, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	d := &PortAudio{out: make([]float32, framesPerBuffer)}
	d.frames = newFrames(d.write)
	stream, err := portaudio.OpenDefaultStream(0, 1, p.SampleRate, len(d.out), &d.out)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	d.stream = stream
	return d, nil
}

func (d *PortAudio) write(b []float32) error {
	n := copy(d.out, b)
	for i := n; i < len(d.out); i++ {
		d.out[i] = 0
	}
	if err := d.stream.Write(); err != nil && err != portaudio.OutputUnderflowed {
		return err
	}
	return nil
}

func (d *PortAudio) Close() error {
	err := d.sync()
	if e := d.stream.Stop(); err == nil {
		err = e
	}
	if e := d.stream.Close(); err == nil {
		err = e
	}
	if e := portaudio.Terminate(); err == nil {
		err = e
	}
	return err
}
