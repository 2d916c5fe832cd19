// File: database/repository/ticket/occupied.go
package ticketRepo

import (
	"context"
	"time"
)

// GetOccupiedTimes lists the appointment times already booked for a partner
// on a date. Cancelled tickets do not block a slot. The strings are returned
// raw; rows written by the legacy importer are missing the leading zero on
// single-digit hours.
func (r *postgresTicketRepo) GetOccupiedTimes(ctx context.Context, partnerID, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT appointment_time
		FROM tickets
		WHERE partner_id = $1 AND appointment_date = $2 AND status IN ($3, $4)
	`, partnerID, date, "pending", "confirmed")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

func (r *postgresTicketRepo) IsSlotTaken(ctx context.Context, partnerID, date, slot string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The stored time may lack its leading zero, so match both spellings.
	alt := slot
	if len(slot) == 8 && slot[0] == '0' {
		alt = slot[1:]
	}

	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM tickets
		WHERE partner_id = $1 AND appointment_date = $2
			AND appointment_time IN ($3, $4)
			AND status IN ($5, $6)
	`, partnerID, date, slot, alt, "pending", "confirmed").Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postgresTicketRepo) ExpirePendingBefore(ctx context.Context, day time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE tickets
		SET status = $1, updated_at = $2
		WHERE status = $3 AND appointment_date < $4
	`, "cancelled", time.Now(), "pending", day.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
