//go:build mage

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

const binDir = "bin"

// demos maps each binary name to its main package.
var demos = map[string]string{
	"cubes":          "./cmd/cubes",
	"buffer-updates": "./cmd/buffer-updates",
}

type cmdOptions struct {
	args   []string
	env    []string
	stream bool
}

type cmdOption func(*cmdOptions)

func withArgs(args ...string) cmdOption {
	return func(o *cmdOptions) {
		o.args = args
	}
}

func withEnv(env ...string) cmdOption {
	return func(o *cmdOptions) {
		o.env = env
	}
}

func withStream() cmdOption {
	return func(o *cmdOptions) {
		o.stream = true
	}
}

func executeCmd(command string, options ...cmdOption) (string, error) {
	opts := &cmdOptions{}
	for _, o := range options {
		o(opts)
	}

	fmt.Printf("Executing: %s %s\n", command, strings.Join(opts.args, " "))
	cmd := exec.Command(command, opts.args...)
	if len(opts.env) > 0 {
		cmd.Env = append(os.Environ(), opts.env...)
	}

	streamOutput := mg.Verbose() || opts.stream

	var b bytes.Buffer
	if streamOutput {
		cmd.Stdout = io.MultiWriter(&b, os.Stdout)
		cmd.Stderr = io.MultiWriter(&b, os.Stderr)
	} else {
		cmd.Stdout = &b
		cmd.Stderr = &b
	}
	if err := cmd.Run(); err != nil {
		if !streamOutput {
			fmt.Println("... failed command output:")
			fmt.Println(b.String())
		}
		return "", fmt.Errorf("error executing %s: %w", command, err)
	}
	return b.String(), nil
}

func buildDemo(name string) error {
	pkg, ok := demos[name]
	if !ok {
		return fmt.Errorf("unknown demo %q", name)
	}
	out := filepath.Join(binDir, name)
	// go-gl and go-sdl2 are cgo packages.
	_, err := executeCmd("go", withArgs("build", "-o", out, pkg), withEnv("CGO_ENABLED=1"))
	return err
}
