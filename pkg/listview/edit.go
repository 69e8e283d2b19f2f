package listview

import (
	"context"
	"sync"

	apperrors "gym-admin/pkg/errors"
)

type EditPhase int

const (
	Viewing EditPhase = iota
	Editing
	Saving
)

func (p EditPhase) String() string {
	switch p {
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	default:
		return "viewing"
	}
}

func (p EditPhase) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// EditState is a renderable snapshot of the edit slot.
type EditState struct {
	Phase      EditPhase `json:"phase"`
	RowID      int64     `json:"row_id,omitempty"`
	Field      string    `json:"field,omitempty"`
	Staged     string    `json:"staged,omitempty"`
	FieldError string    `json:"field_error,omitempty"`
}

// EditSlot is the single shared inline-edit slot a screen owns: only one
// (row, field) pair can be in Editing or Saving at a time, and switching
// edit target implicitly cancels the previous one.
type EditSlot struct {
	mu         sync.Mutex
	phase      EditPhase
	rowID      int64
	field      string
	staged     string
	fieldError string
}

// Begin seeds the staged value from the current record value and enters
// Editing. It refuses to interrupt an in-flight save.
func (e *EditSlot) Begin(rowID int64, field, current string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == Saving {
		return apperrors.ErrSaveInFlight
	}
	e.phase = Editing
	e.rowID = rowID
	e.field = field
	e.staged = current
	e.fieldError = ""
	return nil
}

// Stage updates the in-progress value. Typing clears any field error.
func (e *EditSlot) Stage(value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != Editing {
		return apperrors.ErrNothingStaged
	}
	e.staged = value
	e.fieldError = ""
	return nil
}

// Cancel discards the staged value and returns to Viewing. Escape routes
// here. An in-flight save cannot be cancelled.
func (e *EditSlot) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == Saving {
		return apperrors.ErrSaveInFlight
	}
	e.phase = Viewing
	e.rowID = 0
	e.field = ""
	e.staged = ""
	e.fieldError = ""
	return nil
}

// Check runs the field validator against the staged value. A failure
// blocks the save, attaches the message to the field and keeps the slot in
// Editing; Saving is never entered.
func (e *EditSlot) Check(validate func(string) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != Editing {
		return apperrors.ErrNothingStaged
	}
	if validate == nil {
		return nil
	}
	if err := validate(e.staged); err != nil {
		e.fieldError = err.Error()
		return err
	}
	e.fieldError = ""
	return nil
}

// Save issues exactly one field-scoped commit for the staged value. On
// success the store is reloaded before the slot returns to Viewing, so the
// next render reflects the server's accepted value. On failure the slot
// returns to Editing with the staged value intact. A second save for the
// slot is rejected while one is in flight.
func (e *EditSlot) Save(ctx context.Context, commit func(context.Context, string) error, reload func(context.Context) error) error {
	e.mu.Lock()
	if e.phase == Saving {
		e.mu.Unlock()
		return apperrors.ErrSaveInFlight
	}
	if e.phase != Editing {
		e.mu.Unlock()
		return apperrors.ErrNothingStaged
	}
	staged := e.staged
	e.phase = Saving
	e.mu.Unlock()

	if err := commit(ctx, staged); err != nil {
		e.mu.Lock()
		e.phase = Editing
		e.mu.Unlock()
		return err
	}

	var reloadErr error
	if reload != nil {
		reloadErr = reload(ctx)
	}

	e.mu.Lock()
	e.phase = Viewing
	e.rowID = 0
	e.field = ""
	e.staged = ""
	e.fieldError = ""
	e.mu.Unlock()
	return reloadErr
}

// Target reports the row and field currently being edited.
func (e *EditSlot) Target() (rowID int64, field string, active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rowID, e.field, e.phase != Viewing
}

func (e *EditSlot) State() EditState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return EditState{
		Phase:      e.phase,
		RowID:      e.rowID,
		Field:      e.field,
		Staged:     e.staged,
		FieldError: e.fieldError,
	}
}
