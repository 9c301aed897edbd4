// Package navigator decides, for a stream of user actions and network
// results, which screen is shown and what data gets loaded. Sections
// are switched, never destroyed: a dormant section keeps its last
// rendered content until a fresh load replaces it.
package navigator

import (
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
)

// State is the controller's coarse view state
type State int

const (
	// StateAuthGate means no vendor is active and the login gate is up
	StateAuthGate State = iota
	// StateLoading means the active section's data fetch is in flight
	StateLoading
	// StateReady means the active section has rendered content
	StateReady
)

// Outcome tells the caller what to present after an Activate call
type Outcome int

const (
	// OutcomeReady: the section is active and its content rendered
	OutcomeReady Outcome = iota
	// OutcomeAuthGate: no vendor; present the login gate instead
	OutcomeAuthGate
	// OutcomeReminderGate: first reminders entry this session; the
	// caller must show the acknowledgement and call AcknowledgeReminders
	OutcomeReminderGate
	// OutcomeLoadFailed: the section activated but its load errored
	OutcomeLoadFailed
)

// Loader fetches and renders a section's data. It returns the rendered
// content for the section body.
type Loader func(Section) (string, error)

// Controller owns the session/view state machine. It is single-threaded
// by design, mirroring the event-driven original; a rewrite introducing
// concurrent loads must serialize access.
type Controller struct {
	sessions *session.Store
	loader   Loader

	state    State
	active   Section
	rendered map[Section]string

	// epoch tags each load with the activation that dispatched it, so a
	// result arriving after the user moved on is discarded instead of
	// overwriting newer state.
	epoch uint64

	reminderGateShown bool
}

// New creates a controller over the given session store and loader
func New(sessions *session.Store, loader Loader) *Controller {
	return &Controller{
		sessions: sessions,
		loader:   loader,
		state:    StateAuthGate,
		active:   DefaultSection,
		rendered: make(map[Section]string),
	}
}

// State returns the current view state
func (c *Controller) State() State {
	return c.state
}

// Active returns the active section
func (c *Controller) Active() Section {
	return c.active
}

// Rendered returns the retained content for a section. Dormant sections
// keep their last render.
func (c *Controller) Rendered(s Section) string {
	return c.rendered[s]
}

// Activate switches to a section. With no active vendor it raises the
// auth gate and leaves the section untouched. The first reminders entry
// in a session interposes the acknowledgement gate; later entries skip
// it.
func (c *Controller) Activate(s Section) (Outcome, error) {
	if !Valid(s) {
		s = DefaultSection
	}

	if c.sessions.Vendor() == nil {
		logger.Debug("Activation without vendor, raising auth gate", "section", s)
		c.state = StateAuthGate
		return OutcomeAuthGate, nil
	}

	if s == SectionReminders && !c.reminderGateShown {
		logger.Debug("First reminders entry, interposing gate")
		return OutcomeReminderGate, nil
	}

	return c.load(s)
}

// AcknowledgeReminders dismisses the one-time reminders gate and
// completes the deferred switch into the reminders section. The flag is
// session-scoped: it lives for this process and resets when it exits.
func (c *Controller) AcknowledgeReminders() (Outcome, error) {
	c.reminderGateShown = true
	return c.load(SectionReminders)
}

// Refresh re-runs the active section's load, e.g. after a mutation
func (c *Controller) Refresh() (Outcome, error) {
	if c.sessions.Vendor() == nil {
		c.state = StateAuthGate
		return OutcomeAuthGate, nil
	}
	return c.load(c.active)
}

func (c *Controller) load(s Section) (Outcome, error) {
	c.active = s
	c.state = StateLoading
	c.epoch++
	dispatched := c.epoch

	content, err := c.loader(s)

	// Discard results for since-deactivated sections: a stale response
	// must not overwrite newer view state.
	if c.epoch != dispatched || c.active != s {
		logger.Debug("Discarding stale load result", "section", s)
		return OutcomeReady, nil
	}

	if err != nil {
		c.state = StateReady
		return OutcomeLoadFailed, err
	}

	c.rendered[s] = content
	c.state = StateReady
	return OutcomeReady, nil
}

// Deliver accepts an out-of-band load result tagged with the epoch at
// dispatch time. Stale deliveries are dropped.
func (c *Controller) Deliver(epoch uint64, s Section, content string) bool {
	if epoch != c.epoch || s != c.active {
		logger.Debug("Dropping stale delivery", "section", s, "epoch", epoch)
		return false
	}
	c.rendered[s] = content
	c.state = StateReady
	return true
}

// Epoch returns the tag for the most recent activation
func (c *Controller) Epoch() uint64 {
	return c.epoch
}
