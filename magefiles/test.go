//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
