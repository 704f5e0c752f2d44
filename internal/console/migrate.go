package console

import (
	"log/slog"

	"github.com/kettari/weather-station/internal/config"
	"github.com/kettari/weather-station/internal/storage"
)

type MigrateCommand struct {
}

func NewMigrateCommand() *MigrateCommand {
	cmd := MigrateCommand{}
	return &cmd
}

func (cmd *MigrateCommand) Name() string {
	return "migrate"
}

func (cmd *MigrateCommand) Description() string {
	return "migrates GORM database scheme"
}

func (cmd *MigrateCommand) Run(_ []string) error {
	slog.Info("migrating GORM database scheme")

	conf := config.GetConfig()
	if err := conf.RequireDatabase(); err != nil {
		return err
	}
	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Migrate(); err != nil {
		return err
	}

	slog.Info("successfully migrated GORM database scheme")

	return nil
}
