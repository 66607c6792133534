package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/inventory-project/inventory-server/internal/models"
)

type ItemQueries struct {
	db *sqlx.DB
}

func NewItemQueries(db *sqlx.DB) *ItemQueries {
	return &ItemQueries{db: db}
}

const itemColumns = `
	id, user_id, customer, public_ip, private_ip, os_type,
	root_username, root_password, server_username, server_password,
	server_name, core, ram, hdd, ports, location, applications,
	db_name, db_password, db_port, dump_location, crontab_config,
	backup_location, url, login_name, login_password,
	db_password_set_at, created_at
`

// CreateItem validates the payload and persists a new item for owner.
func (q *ItemQueries) CreateItem(owner uuid.UUID, req *models.CreateItemRequest) (*models.Item, error) {
	setAt, err := models.ParseDate(req.DBPasswordSetAt)
	if err != nil {
		return nil, &models.ValidationError{Field: "db_password_set_at", Reason: "must be YYYY-MM-DD"}
	}

	item := &models.Item{
		ID:              uuid.New(),
		UserID:          owner,
		Customer:        req.Customer,
		PublicIP:        req.PublicIP,
		PrivateIP:       req.PrivateIP,
		OSType:          req.OSType,
		RootUsername:    req.RootUsername,
		RootPassword:    req.RootPassword,
		ServerUsername:  req.ServerUsername,
		ServerPassword:  req.ServerPassword,
		ServerName:      req.ServerName,
		Core:            *req.Core,
		RAM:             req.RAM,
		HDD:             req.HDD,
		Ports:           req.Ports,
		Location:        req.Location,
		Applications:    req.Applications,
		DBName:          req.DBName,
		DBPassword:      req.DBPassword,
		DBPort:          *req.DBPort,
		DumpLocation:    req.DumpLocation,
		CrontabConfig:   req.CrontabConfig,
		BackupLocation:  req.BackupLocation,
		URL:             req.URL,
		LoginName:       req.LoginName,
		LoginPassword:   req.LoginPassword,
		DBPasswordSetAt: &setAt,
		CreatedAt:       time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO items (` + itemColumns + `) VALUES (
			:id, :user_id, :customer, :public_ip, :private_ip, :os_type,
			:root_username, :root_password, :server_username, :server_password,
			:server_name, :core, :ram, :hdd, :ports, :location, :applications,
			:db_name, :db_password, :db_port, :dump_location, :crontab_config,
			:backup_location, :url, :login_name, :login_password,
			:db_password_set_at, :created_at
		)
	`

	if _, err := q.db.NamedExec(query, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem returns the item only when it exists and belongs to owner.
func (q *ItemQueries) GetItem(owner, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND user_id = $2`
	if err := q.db.Get(&item, query, id, owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListItems returns owner's items, most recently created first.
func (q *ItemQueries) ListItems(owner uuid.UUID) ([]models.Item, error) {
	items := []models.Item{}
	query := `SELECT ` + itemColumns + ` FROM items WHERE user_id = $1 ORDER BY created_at DESC`
	if err := q.db.Select(&items, query, owner); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItem applies a partial payload inside one transaction: the row
// is locked, merged, re-validated against the mandatory-field policy,
// and written all-or-nothing.
func (q *ItemQueries) UpdateItem(owner, id uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error) {
	tx, err := q.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var item models.Item
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND user_id = $2 FOR UPDATE`
	if err := tx.Get(&item, query, id, owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := applyItemUpdate(&item, req, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	update := `
		UPDATE items SET
			customer = :customer, public_ip = :public_ip, private_ip = :private_ip,
			os_type = :os_type, root_username = :root_username, root_password = :root_password,
			server_username = :server_username, server_password = :server_password,
			server_name = :server_name, core = :core, ram = :ram, hdd = :hdd,
			ports = :ports, location = :location, applications = :applications,
			db_name = :db_name, db_password = :db_password, db_port = :db_port,
			dump_location = :dump_location, crontab_config = :crontab_config,
			backup_location = :backup_location, url = :url,
			login_name = :login_name, login_password = :login_password,
			db_password_set_at = :db_password_set_at
		WHERE id = :id AND user_id = :user_id
	`
	if _, err := tx.NamedExec(update, &item); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes the row if it exists and belongs to owner.
func (q *ItemQueries) DeleteItem(owner, id uuid.UUID) error {
	result, err := q.db.Exec(`DELETE FROM items WHERE id = $1 AND user_id = $2`, id, owner)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// applyItemUpdate merges non-nil payload fields into item. Changing
// db_password to a new value stamps db_password_set_at with today's
// date unless the payload carries an explicit date, which wins.
func applyItemUpdate(item *models.Item, req *models.UpdateItemRequest, now time.Time) error {
	passwordChanged := req.DBPassword != nil && *req.DBPassword != item.DBPassword

	if req.Customer != nil {
		item.Customer = *req.Customer
	}
	if req.PublicIP != nil {
		item.PublicIP = *req.PublicIP
	}
	if req.PrivateIP != nil {
		item.PrivateIP = *req.PrivateIP
	}
	if req.OSType != nil {
		item.OSType = *req.OSType
	}
	if req.RootUsername != nil {
		item.RootUsername = *req.RootUsername
	}
	if req.RootPassword != nil {
		item.RootPassword = *req.RootPassword
	}
	if req.ServerUsername != nil {
		item.ServerUsername = *req.ServerUsername
	}
	if req.ServerPassword != nil {
		item.ServerPassword = *req.ServerPassword
	}
	if req.ServerName != nil {
		item.ServerName = *req.ServerName
	}
	if req.Core != nil {
		item.Core = *req.Core
	}
	if req.RAM != nil {
		item.RAM = *req.RAM
	}
	if req.HDD != nil {
		item.HDD = *req.HDD
	}
	if req.Ports != nil {
		item.Ports = *req.Ports
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Applications != nil {
		item.Applications = *req.Applications
	}
	if req.DBName != nil {
		item.DBName = *req.DBName
	}
	if req.DBPassword != nil {
		item.DBPassword = *req.DBPassword
	}
	if req.DBPort != nil {
		item.DBPort = *req.DBPort
	}
	if req.DumpLocation != nil {
		item.DumpLocation = *req.DumpLocation
	}
	if req.CrontabConfig != nil {
		item.CrontabConfig = *req.CrontabConfig
	}
	if req.BackupLocation != nil {
		item.BackupLocation = *req.BackupLocation
	}
	if req.URL != nil {
		item.URL = *req.URL
	}
	if req.LoginName != nil {
		item.LoginName = *req.LoginName
	}
	if req.LoginPassword != nil {
		item.LoginPassword = *req.LoginPassword
	}

	if req.DBPasswordSetAt != nil {
		setAt, err := models.ParseDate(*req.DBPasswordSetAt)
		if err != nil {
			return &models.ValidationError{Field: "db_password_set_at", Reason: "must be YYYY-MM-DD"}
		}
		item.DBPasswordSetAt = &setAt
	} else if passwordChanged {
		today := models.DateOf(now)
		item.DBPasswordSetAt = &today
	}

	return nil
}
