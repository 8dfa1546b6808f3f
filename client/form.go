package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"reservation-service/i18n"
	"reservation-service/validation"
)

// messageKeys names the status banners of one form.
type messageKeys struct {
	fixErrors string
	success   string
	failure   string
}

// sendFunc performs the network call for validated values. A non-empty
// warning is shown next to a successful status.
type sendFunc func(ctx context.Context, values validation.Fields, idempotencyKey string) (warning string, err error)

// form is the state machine both forms share. Close bumps generation so a
// response arriving for an older generation is dropped.
type form struct {
	mu         sync.Mutex
	cfg        FormConfig
	msgs       i18n.Messages
	keys       messageKeys
	validate   func(validation.Fields, i18n.Messages) map[string]string
	defaults   validation.Fields
	values     validation.Fields
	errors     map[string]string
	status     Status
	warning    string
	state      State
	submitting bool
	open       bool
	generation uint64
	dismiss    *time.Timer
}

func newForm(cfg FormConfig, defaults validation.Fields, keys messageKeys, validate func(validation.Fields, i18n.Messages) map[string]string) *form {
	cfg = cfg.withDefaults()
	return &form{
		cfg:      cfg,
		msgs:     cfg.Catalog.Messages(cfg.Locale),
		keys:     keys,
		validate: validate,
		defaults: defaults,
		values:   copyFields(defaults),
		errors:   map[string]string{},
		open:     true,
	}
}

// Set updates one field and clears its error.
func (f *form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
	delete(f.errors, field)
}

func (f *form) Values() validation.Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyFields(f.values)
}

func (f *form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return View{
		State:   f.state,
		Values:  copyFields(f.values),
		Errors:  copyErrors(f.errors),
		Status:  f.status,
		Warning: f.warning,
		Open:    f.open,
	}
}

// Open shows the form again with a clean banner. Entered values stay.
func (f *form) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.open {
		return
	}
	f.open = true
	f.state = StateIdle
	f.status = Status{}
	f.warning = ""
	f.errors = map[string]string{}
}

// Close hides the form. A request still in flight completes, but its
// outcome is not shown and OnDismiss does not fire for it.
func (f *form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeLocked()
}

func (f *form) closeLocked() {
	f.open = false
	f.generation++
	if f.dismiss != nil {
		f.dismiss.Stop()
		f.dismiss = nil
	}
}

func (f *form) submit(ctx context.Context, send sendFunc) (State, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return StateSubmitting, ErrSubmitInProgress
	}
	if !f.open {
		f.mu.Unlock()
		return f.state, ErrFormClosed
	}

	f.state = StateValidating
	f.status = Status{}
	f.warning = ""
	f.errors = map[string]string{}

	if errs := f.validate(f.values, f.msgs); len(errs) > 0 {
		f.errors = errs
		f.status = Status{Kind: StatusNegative, Message: f.msgs.T(f.keys.fixErrors)}
		f.state = StateInvalid
		f.mu.Unlock()
		return StateInvalid, nil
	}

	f.submitting = true
	f.state = StateSubmitting
	gen := f.generation
	values := copyFields(f.values)
	f.mu.Unlock()

	warning, err := send(ctx, values, f.cfg.NewKey())

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	outcome := StateSuccess
	if err != nil {
		outcome = StateFailed
	}
	if gen != f.generation {
		return outcome, err
	}

	if err != nil {
		f.state = StateFailed
		f.status = Status{Kind: StatusNegative, Message: f.msgs.T(f.keys.failure)}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			for field, msg := range apiErr.Errors {
				f.errors[field] = msg
			}
		}
		return StateFailed, err
	}

	f.state = StateSuccess
	f.status = Status{Kind: StatusPositive, Message: f.msgs.T(f.keys.success)}
	f.warning = warning
	f.values = copyFields(f.defaults)
	f.dismiss = time.AfterFunc(f.cfg.DismissAfter, func() { f.dismissed(gen) })
	return StateSuccess, nil
}

func (f *form) dismissed(gen uint64) {
	f.mu.Lock()
	if gen != f.generation {
		f.mu.Unlock()
		return
	}
	f.closeLocked()
	onDismiss := f.cfg.OnDismiss
	f.mu.Unlock()

	if onDismiss != nil {
		onDismiss()
	}
}
