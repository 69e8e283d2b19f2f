package listview

import (
	"sync"

	"github.com/google/uuid"

	apperrors "gym-admin/pkg/errors"
)

type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
)

type Toast struct {
	Message string    `json:"message"`
	Kind    ToastKind `json:"kind"`
}

// Toaster holds the single active toast slot. Sequential toasts replace
// each other rather than stacking.
type Toaster struct {
	mu      sync.Mutex
	current *Toast
}

func (t *Toaster) Show(message string, kind ToastKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = &Toast{Message: message, Kind: kind}
}

// ShowToast is a nil-safe Show for notices produced elsewhere.
func (t *Toaster) ShowToast(toast *Toast) {
	if toast == nil {
		return
	}
	t.Show(toast.Message, toast.Kind)
}

func (t *Toaster) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = nil
}

// Current returns a copy of the active toast, or nil.
func (t *Toaster) Current() *Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return nil
	}
	c := *t.current
	return &c
}

// Confirmation is a pending blocking modal. Its callback runs only on an
// explicit confirm; dismissing closes the modal with no side effects.
type Confirmation struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`

	onConfirm func() error
}

// Confirmer gates destructive and state-changing actions behind a modal.
// Only one confirmation is pending at a time; opening a new one replaces
// (and thereby discards) the previous.
type Confirmer struct {
	mu      sync.Mutex
	pending *Confirmation
}

func (c *Confirmer) Open(title, message string, onConfirm func() error) Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = &Confirmation{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		onConfirm: onConfirm,
	}
	return Confirmation{ID: c.pending.ID, Title: title, Message: message}
}

// Pending returns the open confirmation without its callback, or nil.
func (c *Confirmer) Pending() *Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return nil
	}
	return &Confirmation{ID: c.pending.ID, Title: c.pending.Title, Message: c.pending.Message}
}

// Confirm closes the modal and runs its callback. The id must match the
// pending confirmation. The modal is closed before the callback runs, so a
// failing action cannot be re-confirmed without going through its trigger
// again.
func (c *Confirmer) Confirm(id uuid.UUID) error {
	c.mu.Lock()
	if c.pending == nil || c.pending.ID != id {
		c.mu.Unlock()
		return apperrors.ErrNoConfirmation
	}
	action := c.pending.onConfirm
	c.pending = nil
	c.mu.Unlock()

	if action == nil {
		return nil
	}
	return action()
}

// Dismiss closes the modal without invoking the callback. Backdrop clicks
// and Escape both route here.
func (c *Confirmer) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}
