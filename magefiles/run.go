//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Run mg.Namespace

// Builds and runs the cubes demo.
func (Run) Cubes() error {
	mg.Deps(Build.Cubes)
	return runDemo("cubes", "-debug")
}

// Builds and runs the buffer updates demo with shader hot reload.
func (Run) BufferUpdates() error {
	mg.Deps(Build.BufferUpdates)
	return runDemo("buffer-updates", "-debug", "-shaders", "internal/engine/shader/shaders", "-watch-shaders")
}

func runDemo(name string, args ...string) error {
	fmt.Printf("Run %s...\n", name)
	return sh.RunV(filepath.Join(binDir, name), args...)
}
