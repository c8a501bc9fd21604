// Package model defines the data structures for multi-tenant project management.
package model

import "time"

// Organization is the tenant root. Every Project, Task and TaskComment is
// owned, directly or transitively, by exactly one Organization.
type Organization struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	PasswordHash string    `json:"-"`
	APIKey       string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
