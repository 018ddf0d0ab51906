package scroll

import "time"

// CueVisibility says which directional cues the view should draw.
type CueVisibility struct {
	ShowPrev bool
	ShowNext bool
}

// CueController decides cue visibility and hides cues after a quiet period.
type CueController struct {
	sched Scheduler
	delay time.Duration

	vis   CueVisibility
	shown bool
	timer Handle
}

func newCueController(sched Scheduler, delay time.Duration) *CueController {
	return &CueController{sched: sched, delay: delay}
}

// Update evaluates the cues for one scroll tick.
func (c *CueController) Update(dir Direction, bounds []Bounds, viewTop, viewBottom float64) {
	if len(bounds) == 0 {
		c.setActive(false)
		return
	}
	_, hasNext := nextCandidate(bounds, viewTop, viewBottom)
	_, hasPrev := prevCandidate(bounds, viewTop, viewBottom)
	c.vis = CueVisibility{
		ShowNext: dir == Down && hasNext,
		ShowPrev: dir == Up && hasPrev,
	}
	c.setActive(c.vis.ShowNext || c.vis.ShowPrev)
}

func (c *CueController) setActive(show bool) {
	stop(&c.timer)
	if !show {
		c.shown = false
		return
	}
	c.shown = true
	c.timer = c.sched.AfterFunc(c.delay, func() {
		c.timer = nil
		c.shown = false
	})
}

// Visibility returns the flags last computed.
func (c *CueController) Visibility() CueVisibility { return c.vis }

// Shown reports whether the cues are currently displayed at all.
func (c *CueController) Shown() bool { return c.shown }

func (c *CueController) stop() {
	stop(&c.timer)
	c.shown = false
}
