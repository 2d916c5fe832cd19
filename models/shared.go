package models

import "fmt"

// FormatTicketDate renders a (year, zero-based month, day) triple as the
// "YYYY-MM-DD" string stored on tickets and sent to the occupied lookup.
func FormatTicketDate(year, monthZeroBased, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, monthZeroBased+1, day)
}
