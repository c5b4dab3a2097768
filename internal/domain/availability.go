package domain

import "time"

// DayAvailability summarizes one calendar day of a service.
type DayAvailability struct {
	Date           string      `json:"date"`
	AvailableCount int         `json:"available_count"`
	BookedCount    int         `json:"booked_count"`
	Slots          []time.Time `json:"slots"`
}
