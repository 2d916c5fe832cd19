package booking

import "fmt"

// BookingError carries a stable code the mobile app switches on.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrSessionNotFound = &BookingError{Code: "sessionNotFound", Message: "booking session not found or expired"}
	ErrNoSelection     = &BookingError{Code: "noSelection", Message: "no day and time slot selected"}
	ErrSlotUnavailable = &BookingError{Code: "slotUnavailable", Message: "the selected time slot is no longer available"}
	ErrUnknownSlot     = &BookingError{Code: "unknownSlot", Message: "time slot is not part of the catalog"}
)
