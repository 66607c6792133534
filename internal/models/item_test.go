package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() *Item {
	setAt := NewDate(2026, time.March, 1)
	return &Item{
		Customer:        "acme",
		PublicIP:        "203.0.113.10",
		PrivateIP:       "10.0.0.10",
		OSType:          "ubuntu-22.04",
		RootUsername:    "root",
		RootPassword:    "rootpw",
		ServerUsername:  "deploy",
		ServerPassword:  "deploypw",
		ServerName:      "web-01",
		Core:            8,
		RAM:             "32GB",
		HDD:             "1TB",
		Ports:           "80,443",
		Location:        "fra1",
		Applications:    "nginx, postgres",
		DBName:          "acme_prod",
		DBPassword:      "dbpw",
		DBPort:          5432,
		DumpLocation:    "/var/backups/dumps",
		CrontabConfig:   "0 3 * * * /usr/local/bin/backup.sh",
		BackupLocation:  "s3://acme-backups",
		URL:             "https://acme.example.com",
		LoginName:       "admin",
		LoginPassword:   "adminpw",
		DBPasswordSetAt: &setAt,
	}
}

func TestItemValidateAccepts(t *testing.T) {
	require.NoError(t, validItem().Validate())
}

func TestItemValidateNamesMissingField(t *testing.T) {
	item := validItem()
	item.ServerName = ""

	err := item.Validate()
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "server_name", ve.Field)
}

func TestItemValidateRejectsNegativeIntegers(t *testing.T) {
	item := validItem()
	item.Core = -1
	var ve *ValidationError
	require.ErrorAs(t, item.Validate(), &ve)
	assert.Equal(t, "core", ve.Field)

	item = validItem()
	item.DBPort = -5432
	require.ErrorAs(t, item.Validate(), &ve)
	assert.Equal(t, "db_port", ve.Field)
}

func TestItemValidateRequiresPasswordSetDate(t *testing.T) {
	item := validItem()
	item.DBPasswordSetAt = nil

	var ve *ValidationError
	require.ErrorAs(t, item.Validate(), &ve)
	assert.Equal(t, "db_password_set_at", ve.Field)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", d.String())

	_, err = ParseDate("28/08/2026")
	assert.Error(t, err)
	_, err = ParseDate("2026-13-01")
	assert.Error(t, err)
}

func TestDateDaysSince(t *testing.T) {
	today := NewDate(2026, time.August, 28)
	assert.Equal(t, 0, today.DaysSince(today))
	assert.Equal(t, 5, today.DaysSince(NewDate(2026, time.August, 23)))
	assert.Equal(t, 90, today.DaysSince(NewDate(2026, time.May, 30)))
}
