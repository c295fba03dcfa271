//go:build mage

// Package main provides build targets for the extents project using Mage.
//
// Usage:
//
//	mage build     Compile the extents binary to bin/
//	mage test      Run all tests
//	mage race      Run all tests with the race detector
//	mage cover     Write coverage.out and print per-function coverage
//	mage lint      Run golangci-lint
//	mage smoke     Build, then init, seed, check and stats in a temp dir
//	mage clean     Remove build artifacts
//	mage install   Install extents to GOPATH/bin
//	mage stats     Print Go line counts per package
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName   = "extents"
	binaryDir    = "bin"
	cmdDir       = "./cmd/extents"
	coverProfile = "coverage.out"
	versionVar   = "github.com/mesh-intelligence/extents/internal/cli.Version"
)

func ldflags() string {
	version := os.Getenv("EXTENTS_VERSION")
	if version == "" {
		if out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && out != "" {
			version = strings.TrimPrefix(out, "v")
		}
	}
	if version == "" {
		return ""
	}
	return fmt.Sprintf("-X %s=%s", versionVar, version)
}

// Build compiles the extents binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if lf := ldflags(); lf != "" {
		args = append(args, "-ldflags", lf)
	}
	return sh.RunV("go", append(args, cmdDir)...)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs all tests with the race detector.
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Cover writes a coverage profile and prints the per-function summary.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+coverProfile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Smoke builds the binary and runs it end to end against a scratch
// directory, once per backend.
func Smoke() error {
	mg.Deps(Build)
	bin, err := filepath.Abs(filepath.Join(binaryDir, binaryName))
	if err != nil {
		return err
	}
	for _, backend := range []string{"jsonl", "sqlite"} {
		if err := smoke(bin, backend); err != nil {
			return err
		}
	}
	return nil
}

func smoke(bin, backend string) error {
	dir, err := os.MkdirTemp("", "extents-smoke-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	global := []string{
		"--config-dir", filepath.Join(dir, "config"),
		"--data-dir", filepath.Join(dir, "data"),
		"--backend", backend,
	}
	for _, cmd := range []string{"init", "seed", "check", "stats"} {
		if err := sh.RunV(bin, append(global, cmd)...); err != nil {
			return fmt.Errorf("%s %s: %w", backend, cmd, err)
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	for _, p := range []string{binaryDir, coverProfile} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

type lineCount struct {
	prod, test int
}

// Stats prints Go line counts per package directory.
func Stats() error {
	counts := map[string]*lineCount{}

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			switch path {
			case "vendor", ".git", binaryDir, "magefiles", "_examples":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return nil
		}
		dir := filepath.Dir(path)
		c, ok := counts[dir]
		if !ok {
			c = &lineCount{}
			counts[dir] = c
		}
		if strings.HasSuffix(path, "_test.go") {
			c.test += n
		} else {
			c.prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(counts))
	for d := range counts {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	var total lineCount
	fmt.Printf("%-28s %8s %8s\n", "package", "prod", "test")
	for _, d := range dirs {
		c := counts[d]
		fmt.Printf("%-28s %8d %8d\n", d, c.prod, c.test)
		total.prod += c.prod
		total.test += c.test
	}
	fmt.Printf("%-28s %8d %8d\n", "total", total.prod, total.test)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
