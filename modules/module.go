package modules

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// ArgType represents the expected type of a function argument or result.
type ArgType int

const (
	Int ArgType = iota
	Float
	Bool
	Array
	Decimal
	Any
	// Unit is only meaningful as a return type.
	Unit
)

func (t ArgType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Array:
		return "array"
	case Decimal:
		return "decimal"
	case Unit:
		return "()"
	default:
		return "any"
	}
}

// Func is the Go implementation behind a FuncDef. Arguments arrive already
// converted to the Go types named by FuncDef.Args. The generator belongs to
// the calling execution context.
type Func func(r *rand.Rand, args []any) (any, error)

// FuncDef describes a function exposed by a module.
type FuncDef struct {
	// Name is the script-visible function name (e.g. "rand_bool").
	Name string
	// Args lists the expected typed arguments. Its length is the arity.
	Args []ArgType
	// ArgNames are parameter names, kept only when metadata is compiled in.
	ArgNames []string
	// Returns is the result type.
	Returns ArgType
	// Method, when true, binds the function to the array type: the first
	// argument is the receiver.
	Method bool
	// Doc is a one-line description, kept only when metadata is compiled in.
	Doc string
	// Impl is called with converted arguments.
	Impl Func
}

// Arity returns the number of arguments the function takes.
func (f *FuncDef) Arity() int {
	return len(f.Args)
}

// Module groups the functions contributed by one package.
type Module struct {
	// Name is the module name (e.g. "rand", "array").
	Name string
	// Doc is a one-line module description.
	Doc string
	// Funcs describes the functions this module exposes.
	Funcs []FuncDef
}

var registry = make(map[string]*Module)

// Register adds a module to the global catalog. Modules call it from init.
// Metadata is stripped unless the rand_metadata build tag is set.
func Register(m *Module) {
	if !Metadata {
		for i := range m.Funcs {
			m.Funcs[i].Doc = ""
			m.Funcs[i].ArgNames = nil
		}
	}
	registry[m.Name] = m
}

// Get returns a registered module by name.
func Get(name string) (*Module, bool) {
	m, ok := registry[name]
	return m, ok
}

// IsModule returns true if name is a registered module.
func IsModule(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns sorted names of all registered modules.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Signature renders a definition as "name(arg: type, ...) -> type".
// Parameter names are used when metadata is available.
func (f *FuncDef) Signature() string {
	params := make([]string, len(f.Args))
	for i, t := range f.Args {
		name := fmt.Sprintf("arg%d", i)
		if i < len(f.ArgNames) && f.ArgNames[i] != "" {
			name = f.ArgNames[i]
		}
		params[i] = name + ": " + t.String()
	}
	sig := fmt.Sprintf("%s(%s)", f.Name, strings.Join(params, ", "))
	if f.Returns != Unit {
		sig += " -> " + f.Returns.String()
	}
	return sig
}
