package modules

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

type funcKey struct {
	name  string
	arity int
}

// Registry is the dispatch table a host engine binds: every function
// overload keyed by (name, arity). It is built once and is read-only
// afterwards, so one Registry can back any number of execution contexts.
type Registry struct {
	funcs map[funcKey]*FuncDef
}

// NewRegistry builds a dispatch table from the given modules.
// Two definitions sharing a name and arity are rejected.
func NewRegistry(mods ...*Module) (*Registry, error) {
	reg := &Registry{funcs: make(map[funcKey]*FuncDef)}
	for _, m := range mods {
		for i := range m.Funcs {
			f := &m.Funcs[i]
			if f.Impl == nil {
				return nil, fmt.Errorf("%s.%s: missing implementation", m.Name, f.Name)
			}
			if f.Method && (len(f.Args) == 0 || f.Args[0] != Array) {
				return nil, fmt.Errorf("%s.%s: method receiver must be an array", m.Name, f.Name)
			}
			key := funcKey{f.Name, f.Arity()}
			if _, dup := reg.funcs[key]; dup {
				return nil, fmt.Errorf("%s.%s: duplicate definition with %d argument(s)", m.Name, f.Name, f.Arity())
			}
			reg.funcs[key] = f
		}
	}
	return reg, nil
}

// Default builds a registry of every module in the global catalog.
func Default() (*Registry, error) {
	var mods []*Module
	for _, name := range Names() {
		mods = append(mods, registry[name])
	}
	return NewRegistry(mods...)
}

// Lookup resolves the overload of name taking arity arguments.
func (reg *Registry) Lookup(name string, arity int) (*FuncDef, bool) {
	f, ok := reg.funcs[funcKey{name, arity}]
	return f, ok
}

// Has reports whether any overload of name exists.
func (reg *Registry) Has(name string) bool {
	return len(reg.Arities(name)) > 0
}

// Arities returns the sorted argument counts name is defined for.
func (reg *Registry) Arities(name string) []int {
	var out []int
	for k := range reg.funcs {
		if k.name == name {
			out = append(out, k.arity)
		}
	}
	sort.Ints(out)
	return out
}

// Call resolves name by the number of args, converts every argument to the
// declared type and invokes the implementation with r.
func (reg *Registry) Call(r *rand.Rand, name string, args ...any) (any, error) {
	f, ok := reg.Lookup(name, len(args))
	if !ok {
		if arities := reg.Arities(name); len(arities) > 0 {
			return nil, fmt.Errorf("%s: %w with %d argument(s), expected one of %v", name, ErrUnknownFunction, len(args), arities)
		}
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFunction)
	}
	converted := make([]any, len(args))
	for i, t := range f.Args {
		v, err := convertArg(f.Name, i, t, args[i])
		if err != nil {
			return nil, err
		}
		converted[i] = v
	}
	return f.Impl(r, converted)
}

// Funcs returns every definition sorted by name, then arity.
func (reg *Registry) Funcs() []*FuncDef {
	out := make([]*FuncDef, 0, len(reg.funcs))
	for _, f := range reg.funcs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Arity() < out[j].Arity()
	})
	return out
}

// Methods returns the definitions bound to the array type.
func (reg *Registry) Methods() []*FuncDef {
	var out []*FuncDef
	for _, f := range reg.Funcs() {
		if f.Method {
			out = append(out, f)
		}
	}
	return out
}

// FuncNames returns the distinct function names, sorted.
func (reg *Registry) FuncNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range reg.Funcs() {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}
	return names
}

func convertArg(fn string, index int, t ArgType, v any) (any, error) {
	switch t {
	case Int:
		if n, ok := ToInt(v); ok {
			return n, nil
		}
	case Float:
		if f, ok := ToFloat(v); ok {
			return f, nil
		}
	case Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case Array:
		if a, ok := v.([]any); ok {
			return a, nil
		}
	default:
		return v, nil
	}
	return nil, Invalidf(fn, "argument %d must be %s, got %T", index+1, t, v)
}

// ToInt converts integer kinds and integral floats to int64.
func ToInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		// 2^63 is exactly representable; anything at or above it overflows.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// ToFloat converts numeric kinds to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
