// Package adminform holds the state of an admin create/edit dialog: a typed
// draft kept apart from the persisted copy, the minimal PATCH payload between
// the two, the upload-then-attach flow for file fields, and a guard against
// double submission.
package adminform

import (
	"errors"
	"sync"

	"scholarportal/internal/domain"
)

// Mode tells whether an open form creates or edits.
type Mode int

const (
	ModeClosed Mode = iota
	ModeCreate
	ModeEdit
)

// ErrSubmitInFlight is returned when a submit starts while another is outstanding.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ErrNotOpen is returned when acting on a closed form.
var ErrNotOpen = errors.New("form is not open")

// fieldErrorer is implemented by errors that carry per-field messages,
// e.g. the admin API client's problem responses.
type fieldErrorer interface {
	FieldErrors() map[string]string
}

// Form is the dialog state for one entity kind. D is a typed draft.
type Form[D any] struct {
	mu         sync.Mutex
	mode       Mode
	id         string
	original   D
	draft      D
	submitting bool
	fieldErrs  map[string]string
	lastErr    error
}

// OpenCreate opens the form with a blank draft.
func (f *Form[D]) OpenCreate(blank D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = ModeCreate
	f.id = ""
	f.original = blank
	f.draft = blank
	f.clearErrorsLocked()
}

// OpenEdit opens the form on an existing entity. The draft starts as a copy
// of original; original is kept for the diff.
func (f *Form[D]) OpenEdit(id string, original D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = ModeEdit
	f.id = id
	f.original = original
	f.draft = original
	f.clearErrorsLocked()
}

// Close discards the draft. An outstanding submission is not cancelled.
func (f *Form[D]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero D
	f.mode = ModeClosed
	f.id = ""
	f.original = zero
	f.draft = zero
	f.clearErrorsLocked()
}

// Mode returns the current mode.
func (f *Form[D]) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// EditingID returns the id of the entity being edited, or "".
func (f *Form[D]) EditingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

// Draft returns a copy of the draft.
func (f *Form[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Original returns the persisted copy the form was opened with.
func (f *Form[D]) Original() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.original
}

// Update mutates the draft in place.
func (f *Form[D]) Update(fn func(d *D)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeClosed {
		return ErrNotOpen
	}
	fn(&f.draft)
	return nil
}

// BeginSubmit marks a submission as outstanding. It fails while another one is.
func (f *Form[D]) BeginSubmit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeClosed {
		return ErrNotOpen
	}
	if f.submitting {
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.clearErrorsLocked()
	return nil
}

// EndSubmit records the outcome. On success the form closes; on failure the
// draft is kept and field messages, if any, are exposed via FieldErrors.
func (f *Form[D]) EndSubmit(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err == nil {
		var zero D
		f.mode = ModeClosed
		f.id = ""
		f.original = zero
		f.draft = zero
		f.clearErrorsLocked()
		return
	}

	f.lastErr = err
	var verr *domain.ValidationError
	var fe fieldErrorer
	switch {
	case errors.As(err, &verr):
		f.fieldErrs = copyFields(verr.Fields)
	case errors.As(err, &fe):
		f.fieldErrs = copyFields(fe.FieldErrors())
	}
}

// Submitting reports whether a submission is outstanding.
func (f *Form[D]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// FieldErrors returns the per-field messages of the last failed submit.
func (f *Form[D]) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyFields(f.fieldErrs)
}

// LastError returns the error of the last failed submit or attach.
func (f *Form[D]) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *Form[D]) setLastError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastErr = err
}

func (f *Form[D]) clearErrorsLocked() {
	f.fieldErrs = nil
	f.lastErr = nil
}

func copyFields(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
