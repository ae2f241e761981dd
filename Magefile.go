//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

var Default = Build

const minCoverage = 85.0

// nav and app drive tea.Tick commands from tests, so the race build covers them.
var racePackages = []string{"./internal/nav/...", "./internal/app/...", "./cmd/dorphin/..."}

// Build compiles the dorphin binary.
func Build() error {
	return run("go", "build", "./cmd/dorphin")
}

// Test runs the unit test suite.
func Test() error {
	return run("go", "test", "./...")
}

// Race runs the controller, TUI and command tests with the race detector.
func Race() error {
	return run("go", append([]string{"test", "-race", "-count=1"}, racePackages...)...)
}

// Vet runs go vet over the module.
func Vet() error {
	return run("go", "vet", "./...")
}

// Check runs vet, the race tests and the coverage gate in order.
func Check() error {
	for _, step := range []func() error{Vet, Race, Coverage} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Run starts the terminal app.
func Run() error {
	return run("go", "run", "./cmd/dorphin")
}

// Debug starts the app with debug logging written to dorphin-debug.log.
func Debug() error {
	cmd := exec.Command("go", "run", "./cmd/dorphin")
	cmd.Env = append(os.Environ(), "DORPHIN_LOG_LEVEL=debug", "DORPHIN_LOG_FILE=dorphin-debug.log")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Install installs the dorphin binary into GOPATH/bin or GOBIN.
func Install() error {
	return run("go", "install", "./cmd/dorphin")
}

// Coverage runs the unit tests with coverage and enforces the minimum target.
func Coverage() error {
	profile := filepath.Join(os.TempDir(), "dorphin-coverage.out")
	if err := run("go", "test", "-coverprofile="+profile, "./..."); err != nil {
		return err
	}
	defer os.Remove(profile)
	out, err := exec.Command("go", "tool", "cover", "-func="+profile).CombinedOutput()
	if err != nil {
		fmt.Print(string(out))
		return err
	}
	fmt.Print(string(out))
	total, err := parseTotalCoverage(string(out))
	if err != nil {
		return err
	}
	if total < minCoverage {
		return fmt.Errorf("coverage %.1f%% below required %.0f%%", total, minCoverage)
	}
	return nil
}

func parseTotalCoverage(report string) (float64, error) {
	lines := strings.Split(strings.TrimSpace(report), "\n")
	if len(lines) == 0 {
		return 0, errors.New("empty coverage report")
	}
	last := lines[len(lines)-1]
	fields := strings.Fields(last)
	if len(fields) < 3 {
		return 0, fmt.Errorf("unexpected coverage line: %s", last)
	}
	value := strings.TrimSuffix(fields[len(fields)-1], "%")
	percent, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return percent, nil
}

func run(command string, args ...string) error {
	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
