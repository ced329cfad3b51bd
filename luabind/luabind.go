// Package luabind installs a random function registry into a Lua state.
//
// Every function becomes a Lua global that dispatches on its argument count.
// Array methods are also reachable through a metatable: array(t) tags a
// table so that t:shuffle() and t:sample(n) work.
//
// Lua 5.2 numbers are doubles. Integer arguments must lie within ±2^53, the
// range a double holds exactly; larger ones are rejected as invalid so that a
// bounded result never rounds onto or past its bound.
package luabind

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Shopify/go-lua"
	"github.com/rubiojr/scriptrand/modules"
)

// maxExactInt is the largest magnitude a Lua number holds without rounding.
const maxExactInt = 1 << 53

// ArrayTypeName is the registry name of the array metatable.
const ArrayTypeName = "scriptrand.array"

// ref points at one slot of a table sitting on the Lua stack during a call.
// Array elements cross into Go as refs, so any Lua value survives a shuffle
// or a sample unchanged.
type ref struct {
	table int
	key   int
}

type binding struct {
	reg *modules.Registry
	r   *rand.Rand
}

// Bind installs every function of reg as a global of l, plus the array
// metatable and the array constructor. All calls draw from r, which must
// not be shared with another goroutine.
func Bind(l *lua.State, reg *modules.Registry, r *rand.Rand) {
	b := &binding{reg: reg, r: r}
	for _, name := range reg.FuncNames() {
		l.Register(name, b.function(name))
	}

	lua.NewMetaTable(l, ArrayTypeName)
	l.NewTable()
	seen := make(map[string]bool)
	for _, f := range reg.Methods() {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		l.PushGoFunction(b.function(f.Name))
		l.SetField(-2, f.Name)
	}
	l.SetField(-2, "__index")
	l.Pop(1)

	l.Register("array", newArray)
}

// NewState returns a Lua state with the standard libraries open and reg
// bound to r.
func NewState(reg *modules.Registry, r *rand.Rand) *lua.State {
	l := lua.NewState()
	lua.OpenLibraries(l)
	Bind(l, reg, r)
	return l
}

func newArray(l *lua.State) int {
	if l.IsNoneOrNil(1) {
		l.NewTable()
	} else {
		lua.CheckType(l, 1, lua.TypeTable)
		l.PushValue(1)
	}
	lua.SetMetaTableNamed(l, ArrayTypeName)
	return 1
}

func (b *binding) function(name string) lua.Function {
	return func(l *lua.State) int {
		n := l.Top()
		f, ok := b.reg.Lookup(name, n)
		if !ok {
			lua.Errorf(l, "%s: no overload takes %d argument(s), expected one of %v", name, n, b.reg.Arities(name))
			return 0
		}

		args := make([]any, n)
		for i := range args {
			args[i] = toGo(l, i+1)
		}
		if err := checkExactInts(f, args); err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}

		result, err := b.reg.Call(b.r, name, args...)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}

		for _, arg := range args {
			if items, ok := arg.([]any); ok {
				writeBack(l, items)
			}
		}

		if f.Returns == modules.Unit {
			return 0
		}
		if err := push(l, result); err != nil {
			lua.Errorf(l, "%s: %s", name, err.Error())
			return 0
		}
		return 1
	}
}

// checkExactInts rejects Int arguments a double cannot represent exactly.
func checkExactInts(f *modules.FuncDef, args []any) error {
	for i, t := range f.Args {
		if t != modules.Int {
			continue
		}
		if n, ok := args[i].(float64); ok && math.Abs(n) > maxExactInt {
			return modules.Invalidf(f.Name, "argument %d (%v) exceeds the exact integer range of a Lua number (±2^53)", i+1, n)
		}
	}
	return nil
}

// toGo converts the value at index. Tables become []any of refs to their
// sequence slots 1..#t.
func toGo(l *lua.State, index int) any {
	switch l.TypeOf(index) {
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		return n
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeString:
		s, _ := l.ToString(index)
		return s
	case lua.TypeTable:
		table := l.AbsIndex(index)
		items := make([]any, l.RawLength(table))
		for i := range items {
			items[i] = ref{table: table, key: i + 1}
		}
		return items
	default:
		return nil
	}
}

// writeBack stores items into their source table when a call reordered them.
// All values are copied out before any slot is overwritten.
func writeBack(l *lua.State, items []any) {
	if len(items) == 0 {
		return
	}
	first, ok := items[0].(ref)
	if !ok {
		return
	}
	table := first.table
	moved := false
	for i, it := range items {
		if it != (ref{table: table, key: i + 1}) {
			moved = true
			break
		}
	}
	if !moved {
		return
	}

	l.CreateTable(len(items), 0)
	tmp := l.Top()
	for i, it := range items {
		_ = push(l, it)
		l.RawSetInt(tmp, i+1)
	}
	for i := range items {
		l.RawGetInt(tmp, i+1)
		l.RawSetInt(table, i+1)
	}
	l.Pop(1)
}

func push(l *lua.State, v any) error {
	switch v := v.(type) {
	case nil:
		l.PushNil()
	case ref:
		l.RawGetInt(v.table, v.key)
	case int64:
		l.PushNumber(float64(v))
	case int:
		l.PushInteger(v)
	case float64:
		l.PushNumber(v)
	case bool:
		l.PushBoolean(v)
	case string:
		l.PushString(v)
	case []any:
		l.CreateTable(len(v), 0)
		table := l.Top()
		for i, it := range v {
			if err := push(l, it); err != nil {
				l.Pop(1)
				return err
			}
			l.RawSetInt(table, i+1)
		}
	case fmt.Stringer:
		l.PushString(v.String())
	default:
		return fmt.Errorf("cannot pass %T to Lua", v)
	}
	return nil
}
