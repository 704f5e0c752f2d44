package storage

import (
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/kettari/weather-station/internal/entity"
)

type Manager struct {
	connectionString string
	db               *gorm.DB
}

func NewManager(connectionString string) *Manager {
	return &Manager{connectionString: connectionString}
}

func (m *Manager) Connect() error {
	if m.db != nil {
		return nil
	}

	db, err := gorm.Open(postgres.Open(m.connectionString), gormConfig())
	if err != nil {
		return errors.Wrap(err, "unable to open database")
	}
	m.db = db

	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "ws_", // table for `Report` is `ws_reports`
		},
	}
}

func (m *Manager) DB() *gorm.DB {
	return m.db
}

func (m *Manager) Migrate() error {
	if err := m.Connect(); err != nil {
		return err
	}
	if err := m.db.AutoMigrate(&entity.Report{}); err != nil {
		return errors.Wrap(err, "unable to migrate schema")
	}
	return nil
}
