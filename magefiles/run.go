//go:build mage

package main

import (
	"fmt"
	"net/http"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the game in a native window.
func (Run) Native() error {
	fmt.Println("Run native...")
	_, err := executeCmd("go", withArgs("run", ".", "--config", "game.toml"), withStream())
	return err
}

// Runs the game without a window for ten seconds.
func (Run) Headless() error {
	_, err := executeCmd("go", withArgs("run", ".", "--headless", "--duration", "10s", "--log-level", "debug"), withStream())
	return err
}

// Builds the wasm bundle and serves www/ on :8080.
func (Run) Web() error {
	mg.Deps(Build.Wasm)
	fmt.Println("Serving www/ on http://localhost:8080")
	return http.ListenAndServe(":8080", http.FileServer(http.Dir("www")))
}

// Runs the unit tests.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
