package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item is one server inventory record. Every descriptive field is
// mandatory; DBPasswordSetAt is nullable in storage so the reminder
// engine can tolerate rows that predate the policy.
type Item struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"-" db:"user_id"`

	Customer       string `json:"customer" db:"customer"`
	PublicIP       string `json:"public_ip" db:"public_ip"`
	PrivateIP      string `json:"private_ip" db:"private_ip"`
	OSType         string `json:"os_type" db:"os_type"`
	RootUsername   string `json:"root_username" db:"root_username"`
	RootPassword   string `json:"root_password" db:"root_password"`
	ServerUsername string `json:"server_username" db:"server_username"`
	ServerPassword string `json:"server_password" db:"server_password"`
	ServerName     string `json:"server_name" db:"server_name"`
	Core           int    `json:"core" db:"core"`
	RAM            string `json:"ram" db:"ram"`
	HDD            string `json:"hdd" db:"hdd"`
	Ports          string `json:"ports" db:"ports"`
	Location       string `json:"location" db:"location"`
	Applications   string `json:"applications" db:"applications"`
	DBName         string `json:"db_name" db:"db_name"`
	DBPassword     string `json:"db_password" db:"db_password"`
	DBPort         int    `json:"db_port" db:"db_port"`
	DumpLocation   string `json:"dump_location" db:"dump_location"`
	CrontabConfig  string `json:"crontab_config" db:"crontab_config"`
	BackupLocation string `json:"backup_location" db:"backup_location"`
	URL            string `json:"url" db:"url"`
	LoginName      string `json:"login_name" db:"login_name"`
	LoginPassword  string `json:"login_password" db:"login_password"`

	DBPasswordSetAt *Date     `json:"db_password_set_at" db:"db_password_set_at"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CreateItemRequest is the full payload for item creation. All fields
// are mandatory; integer fields must be >= 0 and the password-set date
// must be YYYY-MM-DD.
type CreateItemRequest struct {
	Customer        string `json:"customer" binding:"required"`
	PublicIP        string `json:"public_ip" binding:"required"`
	PrivateIP       string `json:"private_ip" binding:"required"`
	OSType          string `json:"os_type" binding:"required"`
	RootUsername    string `json:"root_username" binding:"required"`
	RootPassword    string `json:"root_password" binding:"required"`
	ServerUsername  string `json:"server_username" binding:"required"`
	ServerPassword  string `json:"server_password" binding:"required"`
	ServerName      string `json:"server_name" binding:"required"`
	Core            *int   `json:"core" binding:"required,gte=0"`
	RAM             string `json:"ram" binding:"required"`
	HDD             string `json:"hdd" binding:"required"`
	Ports           string `json:"ports" binding:"required"`
	Location        string `json:"location" binding:"required"`
	Applications    string `json:"applications" binding:"required"`
	DBName          string `json:"db_name" binding:"required"`
	DBPassword      string `json:"db_password" binding:"required"`
	DBPort          *int   `json:"db_port" binding:"required,gte=0"`
	DumpLocation    string `json:"dump_location" binding:"required"`
	CrontabConfig   string `json:"crontab_config" binding:"required"`
	BackupLocation  string `json:"backup_location" binding:"required"`
	URL             string `json:"url" binding:"required"`
	LoginName       string `json:"login_name" binding:"required"`
	LoginPassword   string `json:"login_password" binding:"required"`
	DBPasswordSetAt string `json:"db_password_set_at" binding:"required"`
}

// UpdateItemRequest is a partial payload: nil fields keep their stored
// value.
type UpdateItemRequest struct {
	Customer        *string `json:"customer"`
	PublicIP        *string `json:"public_ip"`
	PrivateIP       *string `json:"private_ip"`
	OSType          *string `json:"os_type"`
	RootUsername    *string `json:"root_username"`
	RootPassword    *string `json:"root_password"`
	ServerUsername  *string `json:"server_username"`
	ServerPassword  *string `json:"server_password"`
	ServerName      *string `json:"server_name"`
	Core            *int    `json:"core"`
	RAM             *string `json:"ram"`
	HDD             *string `json:"hdd"`
	Ports           *string `json:"ports"`
	Location        *string `json:"location"`
	Applications    *string `json:"applications"`
	DBName          *string `json:"db_name"`
	DBPassword      *string `json:"db_password"`
	DBPort          *int    `json:"db_port"`
	DumpLocation    *string `json:"dump_location"`
	CrontabConfig   *string `json:"crontab_config"`
	BackupLocation  *string `json:"backup_location"`
	URL             *string `json:"url"`
	LoginName       *string `json:"login_name"`
	LoginPassword   *string `json:"login_password"`
	DBPasswordSetAt *string `json:"db_password_set_at"`
}

// ValidationError names the field that failed input validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s %s", e.Field, e.Reason)
}

// Validate checks the mandatory-field policy over a complete record.
// It is applied to merged records before an update commits.
func (i *Item) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"customer", i.Customer},
		{"public_ip", i.PublicIP},
		{"private_ip", i.PrivateIP},
		{"os_type", i.OSType},
		{"root_username", i.RootUsername},
		{"root_password", i.RootPassword},
		{"server_username", i.ServerUsername},
		{"server_password", i.ServerPassword},
		{"server_name", i.ServerName},
		{"ram", i.RAM},
		{"hdd", i.HDD},
		{"ports", i.Ports},
		{"location", i.Location},
		{"applications", i.Applications},
		{"db_name", i.DBName},
		{"db_password", i.DBPassword},
		{"dump_location", i.DumpLocation},
		{"crontab_config", i.CrontabConfig},
		{"backup_location", i.BackupLocation},
		{"url", i.URL},
		{"login_name", i.LoginName},
		{"login_password", i.LoginPassword},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field, Reason: "is required"}
		}
	}
	if i.Core < 0 {
		return &ValidationError{Field: "core", Reason: "must be >= 0"}
	}
	if i.DBPort < 0 {
		return &ValidationError{Field: "db_port", Reason: "must be >= 0"}
	}
	if i.DBPasswordSetAt == nil {
		return &ValidationError{Field: "db_password_set_at", Reason: "is required"}
	}
	return nil
}
