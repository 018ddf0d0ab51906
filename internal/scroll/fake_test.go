package scroll

import (
	"sort"
	"time"
)

type fakeElement struct {
	top      float64
	height   float64
	progress float64
}

func (e *fakeElement) OffsetTop() float64    { return e.top }
func (e *fakeElement) OffsetHeight() float64 { return e.height }
func (e *fakeElement) SetProgress(p float64) { e.progress = p }

type fakeView struct {
	y            float64
	height       float64
	scrollHeight float64
	header       float64
	reduced      bool
	elements     map[SectionID]*fakeElement
	writes       []float64
}

// newFakeView stacks sections top to bottom with the given heights.
func newFakeView(viewport, header float64, ids []SectionID, heights ...float64) *fakeView {
	v := &fakeView{height: viewport, header: header, elements: map[SectionID]*fakeElement{}}
	top := 0.0
	for i, id := range ids {
		v.elements[id] = &fakeElement{top: top, height: heights[i]}
		top += heights[i]
	}
	v.scrollHeight = top
	return v
}

func (v *fakeView) ScrollY() float64      { return v.y }
func (v *fakeView) Height() float64       { return v.height }
func (v *fakeView) ScrollHeight() float64 { return v.scrollHeight }
func (v *fakeView) HeaderHeight() float64 { return v.header }
func (v *fakeView) PrefersReducedMotion() bool {
	return v.reduced
}

func (v *fakeView) ScrollTo(y float64) {
	v.y = y
	v.writes = append(v.writes, y)
}

func (v *fakeView) Element(id SectionID) Element {
	if el, ok := v.elements[id]; ok {
		return el
	}
	return nil
}

type fakeRegion struct{ marked bool }

func (r fakeRegion) Marked(marker string) bool { return r.marked && marker == NoSnapMarker }

type fakeHandle struct{ stop func() }

func (h fakeHandle) Stop() { h.stop() }

type fakeTimer struct {
	at time.Time
	f  func()
}

// fakeScheduler is a manual clock with timer and frame registries.
type fakeScheduler struct {
	now    time.Time
	seq    int
	timers map[int]fakeTimer
	frames map[int]func(time.Time)
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{
		now:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		timers: map[int]fakeTimer{},
		frames: map[int]func(time.Time){},
	}
}

func (s *fakeScheduler) Now() time.Time { return s.now }

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Handle {
	s.seq++
	id := s.seq
	s.timers[id] = fakeTimer{at: s.now.Add(d), f: f}
	return fakeHandle{stop: func() { delete(s.timers, id) }}
}

func (s *fakeScheduler) RequestFrame(f func(time.Time)) Handle {
	s.seq++
	id := s.seq
	s.frames[id] = f
	return fakeHandle{stop: func() { delete(s.frames, id) }}
}

// Advance moves the clock, firing due timers in deadline order. Frames do not run.
func (s *fakeScheduler) Advance(d time.Duration) {
	end := s.now.Add(d)
	for {
		id, ok := s.nextDue(end)
		if !ok {
			break
		}
		t := s.timers[id]
		delete(s.timers, id)
		s.now = t.at
		t.f()
	}
	s.now = end
}

func (s *fakeScheduler) nextDue(end time.Time) (int, bool) {
	best := 0
	var bestAt time.Time
	for id, t := range s.timers {
		if t.at.After(end) {
			continue
		}
		if best == 0 || t.at.Before(bestAt) || (t.at.Equal(bestAt) && id < best) {
			best, bestAt = id, t.at
		}
	}
	return best, best != 0
}

// Frame advances the clock by dt (firing timers) and runs the frames that were
// pending before it started.
func (s *fakeScheduler) Frame(dt time.Duration) {
	s.Advance(dt)
	ids := make([]int, 0, len(s.frames))
	for id := range s.frames {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		f, ok := s.frames[id]
		if !ok {
			continue
		}
		delete(s.frames, id)
		f(s.now)
	}
}

func (s *fakeScheduler) PendingTimers() int { return len(s.timers) }
func (s *fakeScheduler) PendingFrames() int { return len(s.frames) }
func (s *fakeScheduler) Outstanding() int   { return len(s.timers) + len(s.frames) }
