package scroll

import "time"

// NoSnapMarker is the attribute carried by subtrees that manage their own scrolling.
const NoSnapMarker = "data-no-snap"

// Config holds the tuning constants of the engine. Values are in viewport units
// (pixels in a browser, rows in a terminal).
type Config struct {
	// ProbeOffset is added to the scroll position to find what sits under the header.
	// Zero probes the scroll position itself; a negative value selects the default.
	ProbeOffset float64
	// SnapDelay is the scroll-settle debounce before a snap is evaluated.
	SnapDelay time.Duration
	// CueHideDelay clears navigation cues after the last qualifying tick.
	CueHideDelay time.Duration
	// SuspendWindow blocks snapping after a gesture inside a no-snap region.
	SuspendWindow time.Duration
	// SnapZone is the fraction of the viewport height used as snap proximity.
	SnapZone float64
	// MinSnapDistance below which a snap is a no-op.
	MinSnapDistance float64

	Stiffness      float64
	Damping        float64
	MaxFrameStep   time.Duration
	SettleDistance float64
	SettleSpeed    float64
}

// DefaultConfig returns the constants the page was tuned with.
func DefaultConfig() Config {
	return Config{
		ProbeOffset:     200,
		SnapDelay:       140 * time.Millisecond,
		CueHideDelay:    900 * time.Millisecond,
		SuspendWindow:   600 * time.Millisecond,
		SnapZone:        0.3,
		MinSnapDistance: 2,
		Stiffness:       130,
		Damping:         26,
		MaxFrameStep:    40 * time.Millisecond,
		SettleDistance:  0.6,
		SettleSpeed:     0.6,
	}
}

// withDefaults fills unset fields from DefaultConfig. Every field but ProbeOffset
// treats zero as unset.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ProbeOffset < 0 {
		c.ProbeOffset = d.ProbeOffset
	}
	if c.SnapDelay <= 0 {
		c.SnapDelay = d.SnapDelay
	}
	if c.CueHideDelay <= 0 {
		c.CueHideDelay = d.CueHideDelay
	}
	if c.SuspendWindow <= 0 {
		c.SuspendWindow = d.SuspendWindow
	}
	if c.SnapZone <= 0 {
		c.SnapZone = d.SnapZone
	}
	if c.MinSnapDistance <= 0 {
		c.MinSnapDistance = d.MinSnapDistance
	}
	if c.Stiffness <= 0 {
		c.Stiffness = d.Stiffness
	}
	if c.Damping <= 0 {
		c.Damping = d.Damping
	}
	if c.MaxFrameStep <= 0 {
		c.MaxFrameStep = d.MaxFrameStep
	}
	if c.SettleDistance <= 0 {
		c.SettleDistance = d.SettleDistance
	}
	if c.SettleSpeed <= 0 {
		c.SettleSpeed = d.SettleSpeed
	}
	return c
}

// MarqueeConfig tunes the auto-scrolling list.
type MarqueeConfig struct {
	// Speed in units per second.
	Speed       float64
	ResumeDelay time.Duration
}

// DefaultMarqueeConfig returns 30 units/s with a 1200ms resume delay.
func DefaultMarqueeConfig() MarqueeConfig {
	return MarqueeConfig{Speed: 30, ResumeDelay: 1200 * time.Millisecond}
}

func (c MarqueeConfig) withDefaults() MarqueeConfig {
	d := DefaultMarqueeConfig()
	if c.Speed <= 0 {
		c.Speed = d.Speed
	}
	if c.ResumeDelay <= 0 {
		c.ResumeDelay = d.ResumeDelay
	}
	return c
}
