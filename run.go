package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

type options struct {
	outputPath         string
	includeNoDocstring bool
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, pkg string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	python, err := findPython(cfg.Python)
	if err != nil {
		return err
	}
	provider, err := newASTProvider(python, cfg.CacheSize)
	if err != nil {
		return err
	}
	return generate(ctx, provider, pkg, app.opts, app.stdout)
}

// generate walks the package and writes the reference document. Modules are
// processed strictly one at a time in walk order; the first module-level
// failure aborts the run, leaving whatever was already flushed in the file.
func generate(ctx context.Context, provider syntaxProvider, pkg string, opts options, stdout io.Writer) error {
	out, err := os.Create(opts.outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	md := &markdownWriter{w: out}
	md.header(pkg)

	modules, err := provider.Walk(ctx, pkg)
	if err != nil {
		return err
	}
	for _, name := range modules {
		fmt.Fprintf(stdout, "Processing module: %s\n", name)
		if err := processModule(ctx, provider, md, name, opts, stdout); err != nil {
			return fmt.Errorf("processing %s: %w", name, err)
		}
	}
	fmt.Fprintf(stdout, "Documentation generated in %s\n", opts.outputPath)
	return nil
}

// processModule renders one module's section, or only logs when nothing in
// the module survived classification.
func processModule(ctx context.Context, provider syntaxProvider, md *markdownWriter, name string, opts options, stdout io.Writer) error {
	mod, err := provider.ModuleTree(ctx, name)
	if err != nil {
		return err
	}
	symbols, err := publicSymbols(mod, opts.includeNoDocstring)
	if err != nil {
		return err
	}
	if len(symbols) == 0 {
		fmt.Fprintf(stdout, "No public symbols found in %s\n", name)
		return nil
	}
	md.moduleSection(mod.Name, mod.Doc, symbols)
	return nil
}
