package main

import (
	"errors"
	"fmt"
	"strings"
)

// SymbolKind distinguishes the two record variants the renderer consumes.
type SymbolKind string

const (
	SymbolFunction SymbolKind = "function"
	SymbolClass    SymbolKind = "class"
)

// Symbol is one kept top-level name. Function records carry Params and leave
// Methods nil; class records carry Methods and leave Params nil.
type Symbol struct {
	Kind       SymbolKind
	Name       string
	Params     []string
	Doc        string
	Decorators []string
	Methods    []Method
}

// Method mirrors a function record but is produced only from class bodies.
type Method struct {
	Name       string
	Params     []string
	Doc        string
	Decorators []string
}

// outcome is the per-symbol classification result: a kept record, a skip
// (both fields nil), or an error. Errors are aggregated as values so the
// module level decides what is fatal instead of relying on panic-style flow.
type outcome struct {
	sym *Symbol
	err error
}

// isPublic reports whether a name is public by Python convention: not
// underscore-prefixed, unless it is a dunder name like __init__. A single
// leading double underscore without the trailing pair stays private.
func isPublic(name string) bool {
	if !strings.HasPrefix(name, "_") {
		return true
	}
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// publicSymbols classifies a module's top-level bindings into symbol records,
// preserving declaration order. The first per-symbol error is wrapped with the
// symbol's name and returned; the caller aborts the module on it.
func publicSymbols(mod *Module, includeNoDocstring bool) ([]Symbol, error) {
	var symbols []Symbol
	for _, b := range mod.Bindings {
		if !isPublic(b.Name) {
			continue
		}
		out := classify(b, includeNoDocstring)
		if out.err != nil {
			return nil, fmt.Errorf("processing symbol %s: %w", b.Name, out.err)
		}
		if out.sym != nil {
			symbols = append(symbols, *out.sym)
		}
	}
	return symbols, nil
}

func classify(b Binding, includeNoDocstring bool) outcome {
	switch b.Kind {
	case KindFunction:
		return extractFunction(b, includeNoDocstring)
	case KindClass:
		return extractClass(b)
	default:
		// Module variables, import aliases and the like are not documented.
		return outcome{}
	}
}

// extractFunction keeps a public function only when it has a docstring or the
// caller asked for undocumented functions as well.
func extractFunction(b Binding, includeNoDocstring bool) outcome {
	if b.Name == "" {
		return outcome{err: errors.New("function binding has no name")}
	}
	if b.Doc == "" && !includeNoDocstring {
		return outcome{}
	}
	return outcome{sym: &Symbol{
		Kind:       SymbolFunction,
		Name:       b.Name,
		Params:     b.Params,
		Doc:        b.Doc,
		Decorators: b.Decorators,
	}}
}

// extractClass never drops a public class, documented or not: its value lies
// in its methods. Methods are likewise kept unconditionally once public; the
// docstring flag applies to top-level functions only.
func extractClass(b Binding) outcome {
	if b.Name == "" {
		return outcome{err: errors.New("class binding has no name")}
	}
	sym := &Symbol{
		Kind:       SymbolClass,
		Name:       b.Name,
		Doc:        b.Doc,
		Decorators: b.Decorators,
	}
	for _, member := range b.Body {
		// Constants and nested classes are not methods.
		if member.Kind != KindFunction || !isPublic(member.Name) {
			continue
		}
		sym.Methods = append(sym.Methods, Method{
			Name:       member.Name,
			Params:     member.Params,
			Doc:        member.Doc,
			Decorators: member.Decorators,
		})
	}
	return outcome{sym: sym}
}
