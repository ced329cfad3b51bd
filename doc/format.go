// Package doc renders the function reference of a registry, for the
// terminal and as markdown.
package doc

import (
	"fmt"
	"strings"

	"github.com/rubiojr/scriptrand/modules"
)

const (
	bold  = "\033[1m"
	reset = "\033[0m"
)

// FormatModule formats a catalogued module for terminal display.
func FormatModule(m *modules.Module) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("module %s", m.Name))
	sb.WriteString("\n")
	if m.Doc != "" {
		sb.WriteString("    ")
		sb.WriteString(m.Doc)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for i := range m.Funcs {
		formatFunc(&sb, &m.Funcs[i], false)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// FormatRegistry lists every function of reg, one signature per overload.
// Method overloads are marked. Names are bolded when color is set.
func FormatRegistry(reg *modules.Registry, color bool) string {
	var sb strings.Builder
	for _, f := range reg.Funcs() {
		formatFunc(&sb, f, color)
	}
	return sb.String()
}

func formatFunc(sb *strings.Builder, f *modules.FuncDef, color bool) {
	sig := f.Signature()
	if color {
		sig = bold + f.Name + reset + strings.TrimPrefix(sig, f.Name)
	}
	sb.WriteString(sig)
	if f.Method {
		sb.WriteString("  [array method]")
	}
	sb.WriteString("\n")
	if f.Doc != "" {
		sb.WriteString("    ")
		sb.WriteString(f.Doc)
		sb.WriteString("\n")
	}
}

// Markdown renders the reference document. Overloads sharing a name are
// grouped under one heading with a sub-heading per signature.
func Markdown(reg *modules.Registry) string {
	var sb strings.Builder
	sb.WriteString("# Functions\n\n")

	funcs := reg.Funcs()
	for i, f := range funcs {
		grouped := (i > 0 && funcs[i-1].Name == f.Name) ||
			(i < len(funcs)-1 && funcs[i+1].Name == f.Name)
		first := i == 0 || funcs[i-1].Name != f.Name

		if grouped {
			if first {
				sb.WriteString(fmt.Sprintf("## `%s`\n\n", f.Name))
			}
			sb.WriteString(fmt.Sprintf("### `%s`\n\n", f.Signature()))
		} else {
			sb.WriteString(fmt.Sprintf("## `%s`\n\n", f.Signature()))
		}
		if f.Method {
			sb.WriteString("Array method.\n\n")
		}
		if f.Doc != "" {
			sb.WriteString(f.Doc)
			sb.WriteString("\n\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
