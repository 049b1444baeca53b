//go:build mage

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds www/game.wasm and copies the matching wasm_exec.js next to it.
func (Build) Wasm() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "www/game.wasm", "."), withEnv("GOOS=js", "GOARCH=wasm"), withStream()); err != nil {
		return err
	}

	root, err := executeCmd("go", withArgs("env", "GOROOT"))
	if err != nil {
		return err
	}
	root = strings.TrimSpace(root)
	for _, candidate := range []string{
		filepath.Join(root, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(root, "misc", "wasm", "wasm_exec.js"),
	} {
		if err := copyFile(candidate, filepath.Join("www", "wasm_exec.js")); err == nil {
			return nil
		}
	}
	return fmt.Errorf("wasm_exec.js not found under %s", root)
}

// Builds the native binary.
func (Build) Native() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/wasm-webgl-demo", "."), withStream())
	return err
}
