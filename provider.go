package main

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// BindingKind tags the closed set of node shapes the dumper reports.
type BindingKind string

const (
	KindFunction BindingKind = "function"
	KindClass    BindingKind = "class"
	KindOther    BindingKind = "other"
)

// Binding is one named definition in a module or class body. Params holds
// simple positional parameter names only; Body is populated for classes.
type Binding struct {
	Kind       BindingKind `json:"kind"`
	Name       string      `json:"name"`
	Params     []string    `json:"params,omitempty"`
	Doc        string      `json:"doc,omitempty"`
	Decorators []string    `json:"decorators,omitempty"`
	Body       []Binding   `json:"body,omitempty"`
}

// Module is the dumper's static view of one Python module body.
type Module struct {
	Name     string    `json:"name"`
	Doc      string    `json:"doc,omitempty"`
	Bindings []Binding `json:"bindings"`
}

type packageWalk struct {
	Package string   `json:"package"`
	Modules []string `json:"modules"`
}

// syntaxProvider resolves dotted names into static module representations.
type syntaxProvider interface {
	Walk(ctx context.Context, pkg string) ([]string, error)
	ModuleTree(ctx context.Context, name string) (*Module, error)
}

//go:embed pydump.py
var dumpScript string

// astProvider runs the embedded dumper under a Python interpreter and decodes
// its JSON output. Parsed modules are cached for the lifetime of the provider;
// one provider is constructed per run and threaded through the traversal
// explicitly, so there is no process-wide parse state.
type astProvider struct {
	python string
	cache  *lru.Cache[string, *Module]
}

func newASTProvider(python string, cacheSize int) (*astProvider, error) {
	cache, err := lru.New[string, *Module](cacheSize)
	if err != nil {
		return nil, err
	}
	return &astProvider{python: python, cache: cache}, nil
}

func (p *astProvider) invoke(ctx context.Context, op, target string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.python, "-c", dumpScript, op, target)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s: %s", op, target, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", op, target, err)
	}
	return stdout.Bytes(), nil
}

// Walk imports the package and returns its module names in package-walk order.
func (p *astProvider) Walk(ctx context.Context, pkg string) ([]string, error) {
	out, err := p.invoke(ctx, "walk", pkg)
	if err != nil {
		return nil, fmt.Errorf("could not import package %q (is it installed?): %w", pkg, err)
	}
	var walk packageWalk
	if err := json.Unmarshal(out, &walk); err != nil {
		return nil, fmt.Errorf("decode module list for %s: %w", pkg, err)
	}
	return walk.Modules, nil
}

// ModuleTree returns the parsed body of one module, reusing a cached parse
// when the same dotted name is requested again within the run.
func (p *astProvider) ModuleTree(ctx context.Context, name string) (*Module, error) {
	if mod, ok := p.cache.Get(name); ok {
		return mod, nil
	}
	out, err := p.invoke(ctx, "dump", name)
	if err != nil {
		return nil, err
	}
	var mod Module
	if err := json.Unmarshal(out, &mod); err != nil {
		return nil, fmt.Errorf("decode syntax tree for %s: %w", name, err)
	}
	if mod.Name != name {
		return nil, fmt.Errorf("dumper returned %q for module %s", mod.Name, name)
	}
	p.cache.Add(name, &mod)
	return &mod, nil
}

// lastLine picks the final non-empty line of subprocess stderr, which for
// Python tracebacks is the exception message.
func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
