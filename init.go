package pluck

import (
	"fmt"
	"reflect"
)

// DefaultSampleRate is the rate at which scores are rendered unless
// Params say otherwise.
const DefaultSampleRate = 44100

// An Initer sizes its buffers for a sample rate.  Strings, the engine and
// the analysis and conditioning stages are Initers; Init finds them.
type Initer interface {
	InitAudio(Params)
}

// Params are the rendering parameters shared by every component.
type Params struct {
	SampleRate float64
}

func DefaultParams() Params { return Params{SampleRate: DefaultSampleRate} }

func (p *Params) InitAudio(q Params) { *p = q }

// Step is the duration of one tick in seconds.
func (p Params) Step() float64 { return 1 / p.SampleRate }

// Init walks x and calls InitAudio on every Initer it finds, descending
// through struct fields and slice elements of values that are not
// themselves Initers.
func Init(x interface{}, p Params) {
	if err := initVal(reflect.ValueOf(x), p); err != nil {
		panic("pluck.Init: " + err.Error())
	}
}

var initerType = reflect.TypeOf(new(Initer)).Elem()

func initVal(v reflect.Value, p Params) (err error) {
	if !v.IsValid() || v.Kind() == reflect.Ptr && v.IsNil() || !v.CanInterface() {
		return
	}

	v = reflect.Indirect(v)
	if v.CanAddr() && v.Type().Name() != "" && v.Kind() != reflect.Interface {
		v = v.Addr()
	}
	if x, ok := v.Interface().(Initer); ok {
		x.InitAudio(p)
		return
	}

	defer func() {
		if err != nil {
			// append v to the Init stack trace
			err = fmt.Errorf("%s\n\t%#v", err, v)
		}
	}()
	if t := v.Type(); t.Kind() != reflect.Ptr && reflect.PtrTo(t).Implements(initerType) {
		return fmt.Errorf("%s does not implement pluck.Initer but *%s does.\nInit stack:", t, t)
	}

	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err = initVal(v.Field(i), p); err != nil {
				return
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err = initVal(v.Index(i), p); err != nil {
				return
			}
		}
	}

	return
}
