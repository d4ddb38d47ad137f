//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

// Build compiles the imagelabel binary
func Build() error {
	mg.Deps(Vet)
	return sh.RunV("go", "build", "-o", "bin/imagelabel", "./cmd/imagelabel")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lambda builds a linux/arm64 bootstrap binary for the provided.al2023 runtime
func Lambda() error {
	env := map[string]string{"GOOS": "linux", "GOARCH": "arm64", "CGO_ENABLED": "0"}
	return sh.RunWithV(env, "go", "build", "-tags", "lambda.norpc", "-o", "bin/bootstrap", "./cmd/imagelabel")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
