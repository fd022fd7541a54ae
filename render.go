package main

import (
	"fmt"
	"io"
	"strings"
)

// markdownWriter emits the flat reference document, one module section at a
// time, in declaration order.
type markdownWriter struct {
	w io.Writer
}

func (m *markdownWriter) header(pkg string) {
	fmt.Fprintf(m.w, "# %s Module Documentation\n\n", pkg)
}

// moduleSection writes one ## section. Callers skip modules with no kept
// symbols, so a section always has at least one bullet.
func (m *markdownWriter) moduleSection(name, doc string, symbols []Symbol) {
	fmt.Fprintf(m.w, "## %s\n\n", name)
	if trimmed := strings.TrimSpace(doc); trimmed != "" {
		fmt.Fprintf(m.w, "> %s\n\n", strings.Join(strings.Split(trimmed, "\n"), "\n> "))
	}
	for _, sym := range symbols {
		switch sym.Kind {
		case SymbolFunction:
			fmt.Fprintf(m.w, "- `%sdef %s(%s)`\n",
				decoratorPrefix(sym.Decorators), sym.Name, strings.Join(sym.Params, ", "))
			m.docBlock(sym.Doc, 1)
		case SymbolClass:
			fmt.Fprintf(m.w, "- `%sclass %s`\n", decoratorPrefix(sym.Decorators), sym.Name)
			m.docBlock(sym.Doc, 1)
			for _, method := range sym.Methods {
				fmt.Fprintf(m.w, "    - `%sdef %s(%s)`\n",
					decoratorPrefix(method.Decorators), method.Name, strings.Join(method.Params, ", "))
				m.docBlock(method.Doc, 2)
			}
		}
	}
}

// docBlock indents every docstring line four spaces per nesting level and
// closes the block with a blank line. Empty docstrings write nothing.
func (m *markdownWriter) docBlock(doc string, level int) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return
	}
	indent := strings.Repeat("    ", level)
	for _, line := range strings.Split(doc, "\n") {
		fmt.Fprintf(m.w, "%s%s\n", indent, line)
	}
	fmt.Fprintln(m.w)
}

// decoratorPrefix renders declared decorators as a space-joined @-list with a
// trailing space. An empty list contributes nothing, not a bare @ token.
func decoratorPrefix(decorators []string) string {
	if len(decorators) == 0 {
		return ""
	}
	parts := make([]string, len(decorators))
	for i, d := range decorators {
		parts[i] = "@" + d
	}
	return strings.Join(parts, " ") + " "
}
