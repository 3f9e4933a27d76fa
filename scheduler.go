package mandala

// schedulerState tracks the generation state machine: Idle -> Generating ->
// Idle, with a single pending side-slot.
type schedulerState uint8

const (
	schedIdle schedulerState = iota
	schedGenerating
)

// GenRequest is one regeneration request: the biometrics and viewport to
// generate from, plus a reason tag for logging.
type GenRequest struct {
	Biometrics Biometrics
	Viewport   Viewport
	Reason     string
}

// Scheduler coalesces regeneration requests into at most one generation in
// flight. Requests arriving mid-flight overwrite a single pending slot
// (newest wins), so a burst of N requests produces exactly one follow-up
// run using the latest inputs.
//
// Everything runs on the caller's single update thread: Request and Step
// must be called from the same goroutine. Mutual exclusion is structural,
// not locked.
type Scheduler struct {
	gen        *Generator
	onComplete func(*SceneGraph, error)

	state      schedulerState
	run        *generationRun
	pending    bool
	pendingReq GenRequest

	completed int
}

// NewScheduler creates a scheduler around gen. onComplete receives every
// finished scene (including fallback scenes, paired with their non-fatal
// error) and must not be nil.
func NewScheduler(gen *Generator, onComplete func(*SceneGraph, error)) *Scheduler {
	return &Scheduler{gen: gen, onComplete: onComplete}
}

// Request asks for a regeneration. Idle: the run starts immediately and is
// advanced by subsequent Step calls. Generating: the request is parked in
// the pending slot, replacing any earlier pending request.
func (s *Scheduler) Request(req GenRequest) {
	if s.state == schedGenerating {
		s.pendingReq = req
		s.pending = true
		return
	}
	s.begin(req)
}

// Step advances the in-flight generation by one cooperative slice. Call once
// per frame. When a run finishes its scene is handed off atomically via
// onComplete, and a pending request (if any) starts immediately after.
func (s *Scheduler) Step() {
	if s.state != schedGenerating {
		return
	}
	if !s.run.step(s.run.sliceSize) {
		return
	}
	scene := s.run.finish()
	s.run = nil
	s.state = schedIdle
	s.completed++
	s.onComplete(scene, nil)

	if s.pending {
		req := s.pendingReq
		s.pending = false
		s.pendingReq = GenRequest{}
		s.begin(req)
	}
}

// begin starts a run, or delivers the fallback scene when the request is
// unusable (invalid viewport). The scheduler returns to Idle on failure so
// the next natural trigger can retry.
func (s *Scheduler) begin(req GenRequest) {
	run, err := s.gen.start(req.Biometrics, req.Viewport)
	if err != nil {
		s.completed++
		s.onComplete(fallbackScene(req.Viewport), err)
		return
	}
	s.run = run
	s.state = schedGenerating
}

// Busy reports whether a generation is in flight.
func (s *Scheduler) Busy() bool {
	return s.state == schedGenerating
}

// HasPending reports whether a request is parked in the pending slot.
func (s *Scheduler) HasPending() bool {
	return s.pending
}

// Completed returns the number of finished generations (fallbacks included).
func (s *Scheduler) Completed() int {
	return s.completed
}
