package cli

import (
	"fmt"
	"os"
	"path/filepath"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/tugas/internal/session"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: server reachable
	reqCtx, cancel := requestContext()
	defer cancel()
	if err := ctx.API.Ping(reqCtx); err != nil {
		fmt.Printf("❌ Server reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Server reachable: OK (%s)\n", ctx.API.BaseURL())
	}

	// Check 2: OS keyring
	if session.KeyringAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Session tokens will be kept in the local state store\n")
	}

	// Check 3: state store round trip
	if err := checkStateStore(ctx); err != nil {
		fmt.Printf("❌ State store: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ State store: OK\n")
	}

	// Check 4: session credential (informational)
	if _, ok := ctx.Sessions.Get(); ok {
		fmt.Printf("✓ Session: credential held\n")
	} else {
		fmt.Printf("⊘ Session: not logged in\n")
	}

	// Check 5: duplicate instances
	if n, err := countInstances(); err != nil {
		fmt.Printf("⚠ Process check: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if n > 1 {
		fmt.Printf("⚠ Process check: %d instances running\n", n)
	} else {
		fmt.Printf("✓ Process check: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed")
	return nil
}

func checkStateStore(ctx *Context) error {
	const probe = "doctor_probe"
	if err := ctx.State.Set(probe, "ok"); err != nil {
		return err
	}
	v, err := ctx.State.Get(probe)
	if err != nil {
		return err
	}
	if v != "ok" {
		return fmt.Errorf("state store returned %q, want %q", v, "ok")
	}
	return ctx.State.Delete(probe)
}

// countInstances counts running processes sharing this binary's name.
func countInstances() (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, err
	}
	name := filepath.Base(exe)

	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range procs {
		if p.Executable() == name {
			n++
		}
	}
	return n, nil
}
