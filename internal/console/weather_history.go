package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/kettari/weather-station/internal/config"
	"github.com/kettari/weather-station/internal/entity"
	"github.com/kettari/weather-station/internal/storage"
)

const defaultHistoryLimit = 10

type WeatherHistoryCommand struct {
	out io.Writer
}

func NewWeatherHistoryCommand() *WeatherHistoryCommand {
	cmd := WeatherHistoryCommand{out: os.Stdout}
	return &cmd
}

func (cmd *WeatherHistoryCommand) Name() string {
	return "weather:history"
}

func (cmd *WeatherHistoryCommand) Description() string {
	return "prints the latest broadcast weather values, newest first"
}

func (cmd *WeatherHistoryCommand) Run(args []string) error {
	limit, err := historyLimit(args)
	if err != nil {
		return err
	}

	conf := config.GetConfig()
	if err = conf.RequireDatabase(); err != nil {
		return err
	}
	manager := storage.NewManager(conf.DbConnectionString)
	reports, err := manager.LatestReports(limit)
	if err != nil {
		return err
	}
	slog.Debug("reports loaded", "reports_count", len(reports))

	return cmd.print(reports)
}

func (cmd *WeatherHistoryCommand) print(reports []entity.Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(cmd.out, "Aucune météo enregistrée.")
		return err
	}
	for _, report := range reports {
		if _, err := fmt.Fprintf(cmd.out, "%s  %s\n", report.CreatedAt.Format("02.01.2006 15:04"), report.Weather); err != nil {
			return err
		}
	}
	return nil
}

func historyLimit(args []string) (int, error) {
	if len(args) == 0 {
		return defaultHistoryLimit, nil
	}
	limit, err := strconv.Atoi(args[0])
	if err != nil || limit <= 0 {
		return 0, errors.Errorf("invalid limit %q", args[0])
	}
	return limit, nil
}
