package native

import (
	"context"
	"time"
)

// coreLocationStrategy obtains a fix on macOS through the CoreLocationCLI
// helper, which talks to the Core Location framework (GPS/WiFi assisted).
//
// The first run may trigger the system permission prompt. If it yields
// nothing, the strategy waits out the permission grace period once and
// retries exactly once; a denied prompt or a missing helper reads as
// unavailable.
type coreLocationStrategy struct {
	binary string
	run    commandRunner
}

func newCoreLocationStrategy() *coreLocationStrategy {
	return &coreLocationStrategy{
		binary: "CoreLocationCLI",
		run:    runCommand,
	}
}

func (s *coreLocationStrategy) Name() string {
	return "corelocation"
}

func (s *coreLocationStrategy) Coordinates() (float64, float64, bool) {
	if lat, lon, ok := s.query(); ok {
		return lat, lon, true
	}

	// One bounded wait for the user to answer the permission prompt,
	// then a single requery.
	time.Sleep(permissionWait)
	return s.query()
}

func (s *coreLocationStrategy) query() (float64, float64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), updateWait)
	defer cancel()

	out, err := s.run(ctx, s.binary, "-once", "-format", "%latitude %longitude")
	if err != nil {
		return 0, 0, false
	}
	return parseLatLon(out)
}
