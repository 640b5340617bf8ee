package appointment

import "errors"

var (
	// ErrAppointmentNotFound signals a lookup for an id that has no document.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrSlotUnavailable signals a booking attempt on a slot that is taken or blocked.
	ErrSlotUnavailable = errors.New("time slot is not available")
	// ErrUnknownSlot signals a slot label outside the working-day set.
	ErrUnknownSlot = errors.New("unknown time slot label")
	// ErrSlotNotBlocked signals an unblock for a slot that carries no block.
	ErrSlotNotBlocked = errors.New("time slot is not blocked")
)
