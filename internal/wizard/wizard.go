// Package wizard implements the five-step appointment booking flow: a
// linear state machine that accumulates the user's selections, gates
// forward transitions on per-step completeness and hands off a single
// confirmation payload when the flow completes.
//
// Every invalid transition is a silent no-op. The wizard is a UX gate, not
// a transactional boundary: the worst outcome of any call is unchanged
// state.
package wizard

import (
	"time"

	"vittahub/internal/domain/entity"
	"vittahub/internal/scheduling"
)

// Step is the wizard's position in the linear flow
type Step int

const (
	StepProfessional Step = iota + 1
	StepProcedure
	StepTime
	StepPayment
	StepConfirmation
)

// Labels shown to the user for each step, in flow order
var stepLabels = map[Step]string{
	StepProfessional: "Especialista",
	StepProcedure:    "Procedimento",
	StepTime:         "Horário",
	StepPayment:      "Pagamento",
	StepConfirmation: "Confirmação",
}

func (s Step) Label() string {
	return stepLabels[s]
}

func (s Step) Valid() bool {
	return s >= StepProfessional && s <= StepConfirmation
}

// Selection holds the choices accumulated during one booking attempt
type Selection struct {
	Professional *entity.Professional `json:"professional,omitempty"`
	Procedure    *entity.Procedure    `json:"procedure,omitempty"`
	Date         string               `json:"date,omitempty"` // YYYY-MM-DD
	Time         string               `json:"time,omitempty"` // HH:MM
}

// Confirmation is the terminal hand-off payload, emitted exactly once
type Confirmation struct {
	Professional *entity.Professional `json:"professional"`
	Procedure    *entity.Procedure    `json:"procedure"`
	Date         string               `json:"date"`
	Time         string               `json:"time"`
	Clinic       entity.Clinic        `json:"clinic"`
}

// State is the serializable snapshot of a wizard, persisted between
// requests by the session layer.
type State struct {
	ClinicID  int       `json:"clinic_id"`
	Step      Step      `json:"step"`
	Selection Selection `json:"selection"`
	Confirmed bool      `json:"confirmed"`
}

// Wizard owns step position and the accumulating selection for one clinic
type Wizard struct {
	clinic    entity.Clinic
	step      Step
	selection Selection
	confirmed bool

	horizonDays   int
	bufferMinutes int
	now           func() time.Time

	onConfirm func(Confirmation)
	onClose   func()
}

// Option configures a Wizard at construction
type Option func(*Wizard)

// WithProfessional pre-selects a professional at open time. The wizard
// still starts positioned at step 1 so the choice stays visible.
func WithProfessional(p entity.Professional) Option {
	return func(w *Wizard) {
		professional := p
		w.selection.Professional = &professional
	}
}

func WithHorizonDays(days int) Option {
	return func(w *Wizard) { w.horizonDays = days }
}

func WithBufferMinutes(minutes int) Option {
	return func(w *Wizard) { w.bufferMinutes = minutes }
}

// WithNow overrides the wall clock, used by the session layer and tests
func WithNow(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// WithOnConfirm registers the host callback fired once per successful Confirm
func WithOnConfirm(fn func(Confirmation)) Option {
	return func(w *Wizard) { w.onConfirm = fn }
}

// WithOnClose registers the host callback fired when the wizard should be
// dismissed, after confirm or on explicit Close
func WithOnClose(fn func()) Option {
	return func(w *Wizard) { w.onClose = fn }
}

// New opens a wizard for a clinic, positioned at step 1
func New(clinic entity.Clinic, opts ...Option) *Wizard {
	w := &Wizard{
		clinic:        clinic,
		step:          StepProfessional,
		horizonDays:   scheduling.DefaultHorizonDays,
		bufferMinutes: scheduling.DefaultBufferMinutes,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Restore rebuilds a wizard from a persisted state snapshot. Options that
// carry runtime dependencies (clock, callbacks, schedule tuning) must be
// supplied again.
func Restore(clinic entity.Clinic, state State, opts ...Option) *Wizard {
	w := New(clinic, opts...)
	if state.Step.Valid() {
		w.step = state.Step
	}
	w.selection = state.Selection
	w.confirmed = state.Confirmed
	return w
}

// Snapshot exports the persistable wizard state
func (w *Wizard) Snapshot() State {
	return State{
		ClinicID:  w.clinic.ID,
		Step:      w.step,
		Selection: w.selection,
		Confirmed: w.confirmed,
	}
}

func (w *Wizard) Step() Step            { return w.step }
func (w *Wizard) Selection() Selection  { return w.selection }
func (w *Wizard) Clinic() entity.Clinic { return w.clinic }
func (w *Wizard) Confirmed() bool       { return w.confirmed }

// BookableDates lists the dates the wizard may offer right now
func (w *Wizard) BookableDates() []string {
	return scheduling.BookableDates(w.now(), w.horizonDays)
}

// AvailableTimes lists the slots the wizard may offer for a date
func (w *Wizard) AvailableTimes(date string) []string {
	return scheduling.AvailableTimes(date, w.now(), w.bufferMinutes)
}

// SelectProfessional sets the professional; it never auto-advances
func (w *Wizard) SelectProfessional(p entity.Professional) {
	professional := p
	w.selection.Professional = &professional
}

// SelectProcedure sets the procedure; it never auto-advances
func (w *Wizard) SelectProcedure(p entity.Procedure) {
	procedure := p
	w.selection.Procedure = &procedure
}

// SelectDate sets the date if it is currently bookable, clearing the
// selected time when that time is no longer available on the new date.
// Unknown dates are a no-op.
func (w *Wizard) SelectDate(date string) {
	if !scheduling.IsBookableDate(date, w.now(), w.horizonDays) {
		return
	}
	w.selection.Date = date

	if w.selection.Time == "" {
		return
	}
	for _, t := range w.AvailableTimes(date) {
		if t == w.selection.Time {
			return
		}
	}
	w.selection.Time = ""
}

// SelectTime sets the time unconditionally; callers are expected to offer
// only slots from AvailableTimes.
func (w *Wizard) SelectTime(t string) {
	w.selection.Time = t
}

// CanAdvance reports whether the current step's gate is satisfied
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepProcedure:
		return w.selection.Procedure != nil
	case StepTime:
		return w.selection.Date != "" && w.selection.Time != ""
	case StepConfirmation:
		return false
	default:
		return true
	}
}

// Advance moves forward one step when the gate allows it. Gate failures
// and advancing from the terminal step are silent no-ops.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.step++
	return true
}

// Retreat moves back one step; retreating from step 1 is a silent no-op.
// Selections are never cleared by going back.
func (w *Wizard) Retreat() bool {
	if w.step <= StepProfessional {
		return false
	}
	w.step--
	return true
}

// Confirm packages the selection into the confirmation payload, fires the
// host callbacks and marks the wizard closed. Only meaningful at the
// confirmation step; anywhere else, or after a previous confirm, it is a
// no-op returning ok=false.
func (w *Wizard) Confirm() (Confirmation, bool) {
	if w.step != StepConfirmation || w.confirmed {
		return Confirmation{}, false
	}
	w.confirmed = true

	confirmation := Confirmation{
		Professional: w.selection.Professional,
		Procedure:    w.selection.Procedure,
		Date:         w.selection.Date,
		Time:         w.selection.Time,
		Clinic:       w.clinic,
	}
	if w.onConfirm != nil {
		w.onConfirm(confirmation)
	}
	if w.onClose != nil {
		w.onClose()
	}
	return confirmation, true
}

// Close signals dismissal without confirming
func (w *Wizard) Close() {
	if w.onClose != nil {
		w.onClose()
	}
}
