package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleTreeServesCachedParse(t *testing.T) {
	provider, err := newASTProvider("no-such-interpreter", 8)
	require.NoError(t, err)
	seeded := &Module{Name: "pkg.mod", Doc: "cached"}
	provider.cache.Add("pkg.mod", seeded)

	// A cache hit must not shell out to the (nonexistent) interpreter.
	mod, err := provider.ModuleTree(context.Background(), "pkg.mod")
	require.NoError(t, err)
	assert.Same(t, seeded, mod)
}

func TestNewASTProviderRejectsBadCacheSize(t *testing.T) {
	_, err := newASTProvider("python3", 0)
	assert.Error(t, err)
}

func TestBindingDecode(t *testing.T) {
	payload := `{
		"name": "pkg.mod",
		"doc": "Module doc.",
		"bindings": [
			{"kind": "function", "name": "f", "params": ["a", "b"], "decorators": ["cached"]},
			{"kind": "class", "name": "C", "body": [
				{"kind": "function", "name": "m", "params": ["self"], "doc": "method"},
				{"kind": "other", "name": "FIELD"}
			]},
			{"kind": "other", "name": "X"}
		]
	}`
	var mod Module
	require.NoError(t, json.Unmarshal([]byte(payload), &mod))
	require.Len(t, mod.Bindings, 3)
	assert.Equal(t, KindFunction, mod.Bindings[0].Kind)
	assert.Equal(t, []string{"a", "b"}, mod.Bindings[0].Params)
	assert.Equal(t, []string{"cached"}, mod.Bindings[0].Decorators)
	require.Len(t, mod.Bindings[1].Body, 2)
	assert.Equal(t, KindFunction, mod.Bindings[1].Body[0].Kind)
	assert.Equal(t, "method", mod.Bindings[1].Body[0].Doc)
	assert.Equal(t, KindOther, mod.Bindings[2].Kind)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "", lastLine(""))
	assert.Equal(t, "only", lastLine("only\n"))
	traceback := "Traceback (most recent call last):\n  File \"<string>\", line 1\nModuleNotFoundError: No module named 'nope'\n"
	assert.Equal(t, "ModuleNotFoundError: No module named 'nope'", lastLine(traceback))
}

func TestDumpScriptEmbedded(t *testing.T) {
	assert.Contains(t, dumpScript, "def walk(")
	assert.Contains(t, dumpScript, "def dump(")
}
