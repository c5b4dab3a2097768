package domain

import "time"

// Customer is identified by (tenant, phone); rows are created or updated via
// upsert-on-conflict inside booking and reservation transactions.
type Customer struct {
	ID                string     `json:"id"`
	TenantID          string     `json:"tenant_id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Notes             string     `json:"notes"`
	LastAppointmentAt *time.Time `json:"last_appointment_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type CustomerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
