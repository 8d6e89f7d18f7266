package pluck

import (
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// RunLuaScore runs a Lua script that writes a score.  The script sees
//
//	pluck(time, pitch)  pluck string pitch at time seconds
//	stop(time)          end the score at time seconds
//	freq(pitch)         the frequency of string pitch in Hz
//	name(pitch)         the pitch name of string pitch, e.g. "A4"
//	strings, a4         NumStrings and A4Index
//
// Events are kept in the order the script produces them.
func RunLuaScore(name, src string) (*SliceScore, error) {
	L := lua.NewState()
	defer L.Close()

	var events []Event
	emit := func(pitch func(*lua.LState) int) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			t := float64(L.CheckNumber(1))
			events = append(events, Event{Time: t, Pitch: pitch(L)})
			return 0
		})
	}
	L.SetGlobal("pluck", emit(func(L *lua.LState) int { return L.CheckInt(2) }))
	L.SetGlobal("stop", emit(func(*lua.LState) int { return EndOfScore }))
	L.SetGlobal("freq", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(Freq(L.CheckInt(1))))
		return 1
	}))
	L.SetGlobal("name", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(PitchName(L.CheckInt(1))))
		return 1
	}))
	L.SetGlobal("strings", lua.LNumber(NumStrings))
	L.SetGlobal("a4", lua.LNumber(A4Index))

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return nil, &ScoreFormatError{Err: err}
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, &ScoreFormatError{Err: err}
	}
	return NewSliceScore(events...), nil
}

// ReadLuaScore reads a Lua score script from r and runs it.
func ReadLuaScore(name string, r io.Reader) (*SliceScore, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, &ResourceError{Op: "read score", Path: name, Err: err}
	}
	return RunLuaScore(name, string(src))
}
