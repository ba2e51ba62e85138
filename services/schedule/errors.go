package schedule

import "fmt"

// SlotError carries a stable code alongside the user-facing message.
type SlotError struct {
	Code    string
	Message string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSlotBlocked rejects a save against a locked slot.
	ErrSlotBlocked = &SlotError{
		Code:    "slotBlocked",
		Message: "slot is locked; unlock it before saving bookings",
	}
	// ErrSlotCapacity rejects participant lists above the per-slot cap.
	ErrSlotCapacity = &SlotError{
		Code:    "slotCapacity",
		Message: "slot already has the maximum number of participants",
	}
)
