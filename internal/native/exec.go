package native

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// commandRunner executes an external helper and returns its stdout.
// The darwin and windows strategies shell out to OS-provided tooling;
// tests substitute a fake runner.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// parseLatLon extracts "lat lon" from helper output.
// Anything that does not parse as two floats reads as no fix.
func parseLatLon(output []byte) (float64, float64, bool) {
	fields := strings.Fields(strings.TrimSpace(string(output)))
	if len(fields) < 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
