package native

import (
	"runtime"
	"time"

	"github.com/bjoernd/weathercli/internal/logger"
)

// Bounded waits for the positioning strategies. Each is attempted exactly
// once per invocation, never looped.
const (
	// permissionWait is the grace period after asking the OS for
	// location permission before rechecking.
	permissionWait = 2 * time.Second

	// updateWait bounds a single wait for a coordinate fix.
	updateWait = 2 * time.Second
)

// Strategy obtains a coordinate fix from one OS positioning mechanism.
// There is no error in the signature on purpose: a strategy either has
// coordinates or it does not, and every failure mode (service disabled,
// permission denied, helper missing, malformed fix) reads the same to the
// caller.
type Strategy interface {
	// Name identifies the strategy for diagnostics.
	Name() string

	// Coordinates attempts to obtain a fix. ok is false when no usable
	// fix could be obtained within the bounded waits.
	Coordinates() (lat, lon float64, ok bool)
}

// StrategyFor selects the positioning strategy for the given GOOS.
// At most one strategy is ever active; unsupported platforms get a
// strategy that always reports unavailable.
func StrategyFor(goos string) Strategy {
	switch goos {
	case "linux":
		return newGPSDStrategy(defaultGPSDAddr)
	case "darwin":
		return newCoreLocationStrategy()
	case "windows":
		return newWindowsStrategy()
	default:
		return unsupportedStrategy{goos: goos}
	}
}

// unsupportedStrategy reports unavailable on platforms without native
// positioning support.
type unsupportedStrategy struct {
	goos string
}

func (s unsupportedStrategy) Name() string {
	return "unsupported (" + s.goos + ")"
}

func (s unsupportedStrategy) Coordinates() (float64, float64, bool) {
	return 0, 0, false
}

// Provider queries the host's native positioning service through the
// strategy selected at start-up. It never returns an error: any failure,
// including a panicking strategy, is reported as "not available".
type Provider struct {
	strategy Strategy
	logger   *logger.Logger
}

// NewProvider creates a provider with the strategy for the running OS.
func NewProvider(log *logger.Logger) *Provider {
	return NewProviderWithStrategy(StrategyFor(runtime.GOOS), log)
}

// NewProviderWithStrategy creates a provider with an explicit strategy.
// Tests use this to substitute a fake.
func NewProviderWithStrategy(s Strategy, log *logger.Logger) *Provider {
	if log == nil {
		log = logger.Disabled()
	}
	return &Provider{
		strategy: s,
		logger:   log.WithComponent("native"),
	}
}

// Coordinates attempts to obtain a fix from the active strategy.
// Zero-valued coordinates are treated as "no fix": gpsd in particular
// reports 0,0 before the receiver has a solution.
func (p *Provider) Coordinates() (lat, lon float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug().
				Str("strategy", p.strategy.Name()).
				Interface("panic", r).
				Msg("Positioning strategy panicked")
			lat, lon, ok = 0, 0, false
		}
	}()

	p.logger.Debug().Str("strategy", p.strategy.Name()).Msg("Attempting native location")

	lat, lon, ok = p.strategy.Coordinates()
	if !ok {
		p.logger.Debug().Str("strategy", p.strategy.Name()).Msg("Native location unavailable")
		return 0, 0, false
	}
	if lat == 0 && lon == 0 {
		p.logger.Debug().Str("strategy", p.strategy.Name()).Msg("Discarding zero-valued fix")
		return 0, 0, false
	}

	p.logger.Info().
		Float64("lat", lat).
		Float64("lon", lon).
		Str("strategy", p.strategy.Name()).
		Msg("Native location acquired")
	return lat, lon, true
}
