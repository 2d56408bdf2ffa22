package constraints

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type goListPackage struct {
	ImportPath string
	Imports    []string
}

const modulePrefix = "github.com/EmmerichFrog/bt-home-remote/internal/"

// corePackages tokenize and resolve caller-owned buffers only.
var corePackages = map[string]struct{}{
	modulePrefix + "jsontok": {},
	modulePrefix + "lookup":  {},
	modulePrefix + "stack":   {},
}

func TestCorePackagesAvoidSideEffectImports(t *testing.T) {
	t.Parallel()

	forbidden := map[string]struct{}{
		"os":           {},
		"io/fs":        {},
		"net":          {},
		"net/http":     {},
		"math/rand":    {},
		"math/rand/v2": {},
		"sync":         {},
		"time":         {},
	}

	var violations []string
	for _, pkg := range goList(t, "./internal/...") {
		if _, ok := corePackages[pkg.ImportPath]; !ok {
			continue
		}
		for _, imp := range pkg.Imports {
			if _, banned := forbidden[imp]; banned {
				violations = append(violations, pkg.ImportPath+" imports forbidden package "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found forbidden imports in core packages:\n%s", strings.Join(violations, "\n"))
	}
}

func TestCorePackagesOnlyImportCore(t *testing.T) {
	t.Parallel()

	allowed := map[string]struct{}{
		modulePrefix + "logging": {},
	}
	for pkg := range corePackages {
		allowed[pkg] = struct{}{}
	}

	var violations []string
	for _, pkg := range goList(t, "./internal/...") {
		if _, ok := corePackages[pkg.ImportPath]; !ok {
			continue
		}
		for _, imp := range pkg.Imports {
			if !strings.HasPrefix(imp, modulePrefix) {
				continue
			}
			if _, ok := allowed[imp]; !ok {
				violations = append(violations, pkg.ImportPath+" imports "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found core packages depending on outer layers:\n%s", strings.Join(violations, "\n"))
	}
}

func TestInternalPackagesDoNotImportCommands(t *testing.T) {
	t.Parallel()

	var violations []string
	for _, pkg := range goList(t, "./internal/...") {
		for _, imp := range pkg.Imports {
			if strings.Contains(imp, "/cmd/") {
				violations = append(violations, pkg.ImportPath+" imports "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found internal packages importing commands:\n%s", strings.Join(violations, "\n"))
	}
}

func goList(t *testing.T, patterns ...string) []goListPackage {
	t.Helper()

	args := append([]string{"list", "-json"}, patterns...)
	cmd := exec.Command("go", args...)
	cmd.Dir = repoRoot(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("go list failed: %v\nstderr:\n%s", err, stderr.String())
	}

	decoder := json.NewDecoder(bytes.NewReader(stdout.Bytes()))
	var packages []goListPackage
	for decoder.More() {
		var pkg goListPackage
		if err := decoder.Decode(&pkg); err != nil {
			t.Fatalf("decode go list json: %v", err)
		}
		packages = append(packages, pkg)
	}

	return packages
}

func repoRoot(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}

	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}
