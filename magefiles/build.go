//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the cubes demo into bin/.
func (Build) Cubes() error {
	return buildDemo("cubes")
}

// Builds the buffer updates demo into bin/.
func (Build) BufferUpdates() error {
	return buildDemo("buffer-updates")
}

// Builds every demo.
func (Build) All() {
	mg.Deps(Build.Cubes, Build.BufferUpdates)
}
