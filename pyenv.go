package main

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// findPython picks the interpreter the dumper runs under. An explicitly
// configured interpreter wins; otherwise python3 then python are probed and
// must report a 3.x version.
func findPython(configured string) (string, error) {
	if configured != "" {
		if _, err := exec.LookPath(configured); err != nil {
			return "", fmt.Errorf("configured interpreter %q: %w", configured, err)
		}
		return configured, nil
	}
	for _, candidate := range []string{"python3", "python"} {
		out, err := exec.Command(candidate, "--version").Output()
		if err != nil {
			continue
		}
		if strings.HasPrefix(string(out), "Python 3") {
			return candidate, nil
		}
	}
	return "", errors.New("no Python 3 interpreter found on PATH (set PYDOCMD_PYTHON to override)")
}
