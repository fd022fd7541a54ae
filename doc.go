// # pydocmd
//
// `pydocmd` generates a flat Markdown API reference for an installed Python
// package. It walks the package's module tree, statically extracts every
// public function, class, and method from parsed syntax trees, and writes one
// document summarizing signatures, decorators, and docstrings.
//
// Extraction is static: a small dumper script (embedded in the binary) is run
// under your Python interpreter and prints each module's syntax tree as JSON.
// Beyond importing the target package to enumerate its modules, no code from
// the package is executed.
//
// Key behaviors:
//
//   - one `##` section per module that has at least one kept symbol; modules
//     with nothing public are visited and logged but omitted from output.
//   - module docstrings render as blockquotes, symbol docstrings as indented
//     text under their signature bullet.
//   - parameter order and decorator order are preserved exactly as declared.
//   - names with a single leading underscore are private and skipped; dunder
//     names such as `__init__` are kept.
//   - public functions without a docstring are dropped unless
//     `--include-no-docstring` is set; classes and methods are always kept
//     once public, with or without docstrings.
//
// ## Usage
//
//	pydocmd [flags] <package>
//
// Examples:
//
//   - Document an installed package into the default filelist.md:
//
//     pydocmd requests
//
//   - Choose the output path and keep undocumented functions:
//
//     pydocmd --include-no-docstring -o docs/api.md mypkg
//
//   - Install shell completion for bash (similar invocations exist for zsh,
//     fish, and PowerShell):
//
//     pydocmd completion bash > /usr/local/etc/bash_completion.d/pydocmd
//
// ## Flags
//
//   - `-o FILE`, `--output FILE`: write the Markdown document to `FILE`
//     (default `filelist.md`, overwritten on each run).
//   - `--include-no-docstring`: keep public functions that have no docstring.
//
// ## Configuration
//
// The interpreter running the dumper is chosen in this order: the
// `PYDOCMD_PYTHON` environment variable (a `.env` file in the working
// directory is honored), the `python` key of an optional `.pydocmd.yml`, then
// `python3` and `python` probed from PATH. `.pydocmd.yml` may also set
// `cacheSize` to bound the per-run parsed-module cache.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	pydocmd completion bash        # bash
//	pydocmd completion zsh         # zsh
//	pydocmd completion fish | source
//	pydocmd completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `pydocmd` can generate Markdown for each CLI command via `gen-docs`:
//
//	pydocmd gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
