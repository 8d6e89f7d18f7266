package play

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gordonklaus/pluck"
)

// Oto plays through an oto context.  Samples reach the player through a
// pipe, so Write blocks until the player has taken the previous buffer.
type Oto struct {
	*frames
	player *oto.Player
	w      *io.PipeWriter
	bytes  []byte
}

func NewOto(p pluck.Params) (*Oto, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(p.SampleRate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	r, w := io.Pipe()
	d := &Oto{player: ctx.NewPlayer(r), w: w}
	d.frames = newFrames(d.write)
	d.player.Play()
	return d, nil
}

func (d *Oto) write(b []float32) error {
	d.bytes = appendFloat32LE(d.bytes[:0], b)
	_, err := d.w.Write(d.bytes)
	return err
}

func appendFloat32LE(dst []byte, b []float32) []byte {
	for _, x := range b {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(x))
	}
	return dst
}

func (d *Oto) Close() error {
	err := d.sync()
	d.w.Close()
	for d.player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if e := d.player.Close(); err == nil {
		err = e
	}
	return err
}
