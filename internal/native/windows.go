package native

import (
	"context"
	"fmt"
)

// windowsScript drives the Windows Location API through PowerShell.
// TryStart blocks for the permission wait; the read loop then waits out
// the update window for a fix. Denied permission or an unknown position
// exits non-zero, which reads as unavailable.
const windowsScript = `
Add-Type -AssemblyName System.Device
$watcher = New-Object System.Device.Location.GeoCoordinateWatcher
$null = $watcher.TryStart($false, [TimeSpan]::FromSeconds(%d))
if ($watcher.Permission -eq 'Denied') { exit 1 }
$deadline = (Get-Date).AddSeconds(%d)
while ((Get-Date) -lt $deadline -and $watcher.Position.Location.IsUnknown) {
    Start-Sleep -Milliseconds 100
}
$loc = $watcher.Position.Location
$watcher.Stop()
if ($loc.IsUnknown) { exit 1 }
Write-Output ("{0} {1}" -f $loc.Latitude, $loc.Longitude)
`

// windowsStrategy obtains a fix through the Windows Location API,
// using the GeoCoordinateWatcher from System.Device via PowerShell.
type windowsStrategy struct {
	shell string
	run   commandRunner
}

func newWindowsStrategy() *windowsStrategy {
	return &windowsStrategy{
		shell: "powershell",
		run:   runCommand,
	}
}

func (s *windowsStrategy) Name() string {
	return "windows-location"
}

func (s *windowsStrategy) Coordinates() (float64, float64, bool) {
	// The script itself enforces the permission and update waits; the
	// context deadline is the sum plus slack so a hung PowerShell cannot
	// block past the budget.
	timeout := permissionWait + 2*updateWait
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	script := fmt.Sprintf(windowsScript,
		int(permissionWait.Seconds()), int(updateWait.Seconds()))

	out, err := s.run(ctx, s.shell, "-NoProfile", "-NonInteractive", "-Command", script)
	if err != nil {
		return 0, 0, false
	}
	return parseLatLon(out)
}
