package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inventory-project/inventory-server/internal/models"
)

const passwordExpiryDays = 90

// ItemLister is the slice of the item store the reminder engine reads.
type ItemLister interface {
	ListItems(owner uuid.UUID) ([]models.Item, error)
}

// ReminderService derives database-password reminders from stored
// items. It performs no writes and keeps no state between calls.
type ReminderService struct {
	items ItemLister
}

func NewReminderService(items ItemLister) *ReminderService {
	return &ReminderService{items: items}
}

// PasswordReminders recomputes the reminder feed for owner. The result
// follows the owner's item order (newest created first) and is never
// persisted.
func (s *ReminderService) PasswordReminders(owner uuid.UUID) ([]models.Reminder, error) {
	items, err := s.items.ListItems(owner)
	if err != nil {
		return nil, err
	}

	today := models.Today()
	reminders := make([]models.Reminder, 0)
	for i := range items {
		if r := passwordReminder(&items[i], today); r != nil {
			reminders = append(reminders, *r)
		}
	}
	return reminders, nil
}

// passwordReminder applies the reminder rule for a single item. The
// 1–6 day warning band is carried over unchanged from the previous
// system; see DESIGN.md before widening it.
func passwordReminder(item *models.Item, today models.Date) *models.Reminder {
	if item.DBPasswordSetAt == nil {
		return &models.Reminder{
			ItemID:     item.ID,
			ServerName: item.ServerName,
			Kind:       models.ReminderNoDateSet,
			Message:    fmt.Sprintf("DB password for server '%s' has no set date. Please update password and set date.", item.ServerName),
			Date:       today,
		}
	}

	daysSince := today.DaysSince(*item.DBPasswordSetAt)
	switch {
	case daysSince >= passwordExpiryDays:
		return &models.Reminder{
			ItemID:     item.ID,
			ServerName: item.ServerName,
			Kind:       models.ReminderExpired,
			Message:    fmt.Sprintf("DB password for server '%s' has EXPIRED! Please change immediately.", item.ServerName),
			Date:       today,
		}
	case daysSince >= 1 && daysSince < 7:
		return &models.Reminder{
			ItemID:     item.ID,
			ServerName: item.ServerName,
			Kind:       models.ReminderExpiringSoon,
			Message:    fmt.Sprintf("Change DB password for server '%s'. It expires in %d days!", item.ServerName, passwordExpiryDays-daysSince),
			Date:       today,
		}
	default:
		return nil
	}
}
