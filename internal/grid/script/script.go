// Package script hosts Lua-defined style interceptors, so conditional
// formatting rules can be authored without recompiling.
//
// A script evaluates to a function(text, style, row, col) returning a
// table of style overrides. Only the attributes an interceptor may touch
// are exposed; alignment and borders never cross the bridge.
package script

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/virtgrid/virtgrid/internal/grid/core"
	"github.com/virtgrid/virtgrid/internal/grid/style"
)

// Engine owns one Lua state. Interceptors produced by the engine share
// the state and are serialized by an internal lock; the render call
// itself is single-threaded, the lock only guards against concurrent
// registration from other goroutines.
type Engine struct {
	mu sync.Mutex
	L  *lua.LState
}

// NewEngine creates a Lua engine with the standard libraries that make
// sense for formatting rules (string, math, table).
func NewEngine() *Engine {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.TabLibName, lua.OpenTable},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	return &Engine{L: L}
}

// Close releases the Lua state. Interceptors from this engine must not
// run afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.L.Close()
}

// LoadInterceptor compiles a script and returns it as a style
// interceptor. The script must return a function(text, style, row, col);
// whatever table it returns overlays the base style. A script that
// errors at call time leaves the style untouched.
func (e *Engine) LoadInterceptor(name, src string) (style.Interceptor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.L.DoString(src); err != nil {
		return nil, fmt.Errorf("loading interceptor %s: %w", name, err)
	}
	ret := e.L.Get(-1)
	e.L.Pop(1)
	fn, ok := ret.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("interceptor %s must return a function, got %s", name, ret.Type())
	}

	return func(text string, base style.Data, ref core.CellRef) style.Data {
		e.mu.Lock()
		defer e.mu.Unlock()

		err := e.L.CallByParam(
			lua.P{Fn: fn, NRet: 1, Protect: true},
			lua.LString(text),
			styleToTable(e.L, base),
			lua.LNumber(ref.Row),
			lua.LNumber(ref.Col),
		)
		if err != nil {
			return base
		}
		out := e.L.Get(-1)
		e.L.Pop(1)
		if tbl, ok := out.(*lua.LTable); ok {
			base = applyTable(base, tbl)
		}
		return base
	}, nil
}

// styleToTable exposes the interceptable attributes to Lua.
func styleToTable(L *lua.LState, d style.Data) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("bold", lua.LBool(d.Bold))
	t.RawSetString("italic", lua.LBool(d.Italic))
	t.RawSetString("underline", lua.LBool(d.Underline))
	t.RawSetString("strikethrough", lua.LBool(d.Strikethrough))
	t.RawSetString("text_color", lua.LString(d.TextColor.Hex()))
	t.RawSetString("background_color", lua.LString(d.BackgroundColor.Hex()))
	t.RawSetString("font_family", lua.LString(d.FontFamily))
	t.RawSetString("font_size", lua.LNumber(d.FontSize))
	return t
}

// applyTable overlays a Lua result table onto the base style. Unknown
// keys and malformed values are ignored.
func applyTable(base style.Data, t *lua.LTable) style.Data {
	out := &base

	if v, ok := t.RawGetString("bold").(lua.LBool); ok {
		out.Bold = bool(v)
	}
	if v, ok := t.RawGetString("italic").(lua.LBool); ok {
		out.Italic = bool(v)
	}
	if v, ok := t.RawGetString("underline").(lua.LBool); ok {
		out.Underline = bool(v)
	}
	if v, ok := t.RawGetString("strikethrough").(lua.LBool); ok {
		out.Strikethrough = bool(v)
	}
	if v, ok := t.RawGetString("text_color").(lua.LString); ok {
		out.TextColor = style.ParseColorOr(string(v), base.TextColor)
	}
	if v, ok := t.RawGetString("background_color").(lua.LString); ok {
		out.BackgroundColor = style.ParseColorOr(string(v), base.BackgroundColor)
	}
	if v, ok := t.RawGetString("font_family").(lua.LString); ok && v != "" {
		out.FontFamily = string(v)
	}
	if v, ok := t.RawGetString("font_size").(lua.LNumber); ok && v > 0 {
		out.FontSize = float64(v)
	}
	return *out
}
