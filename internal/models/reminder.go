package models

import "github.com/google/uuid"

// ReminderKind classifies a database-password reminder.
type ReminderKind string

const (
	ReminderExpiringSoon ReminderKind = "db_password_expiry"
	ReminderExpired      ReminderKind = "db_password_expired"
	ReminderNoDateSet    ReminderKind = "db_password_no_date"
)

// Reminder is an ephemeral notice about an item's aging database
// password. Reminders are recomputed on every request and never stored.
type Reminder struct {
	ItemID     uuid.UUID    `json:"item_id"`
	ServerName string       `json:"server_name"`
	Kind       ReminderKind `json:"type"`
	Message    string       `json:"message"`
	Date       Date         `json:"date"`
}
