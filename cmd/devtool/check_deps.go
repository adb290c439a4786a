package main

import (
	"fmt"
	"os/exec"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development dependencies"
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	hasError := false

	// Check Go
	if version, err := getCommandOutput("go", "version"); err == nil {
		PrintSuccess("Go installed: %s", versionField(version, 2))
	} else {
		PrintError("Go not found!")
		fmt.Println("   Install from: https://go.dev/dl/")
		hasError = true
	}

	// Check Docker (integration tests start Postgres through it)
	if version, err := getCommandOutput("docker", "--version"); err == nil {
		PrintSuccess("Docker installed: %s", versionField(version, 2))
	} else {
		PrintWarning("Docker not found, integration tests will be skipped")
		fmt.Println("   Install from: https://docs.docker.com/get-docker/")
	}

	// Check psql (optional, handy for poking at the mirror)
	if _, err := exec.LookPath("psql"); err == nil {
		PrintSuccess("psql installed")
	} else {
		PrintWarning("psql not found (optional)")
	}

	if hasError {
		return fmt.Errorf("required dependencies missing")
	}

	PrintSuccess("Dependency check complete")
	return nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
