package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/kettari/weather-station/internal/config"
	"github.com/kettari/weather-station/internal/console"
)

type Commands []console.Command

func main() {
	slog.Debug("starting console command")

	config.GetConfig()
	commands := initCommands()
	if err := run(commands, os.Args[1:]); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	slog.Debug("command finished")
}

func initCommands() Commands {
	help := console.NewHelpCommand()
	commands := Commands{
		help,
		console.NewStationDemoCommand(),
		console.NewWeatherSetCommand(),
		console.NewWeatherHistoryCommand(),
		console.NewMigrateCommand(),
	}
	help.SetCommands(commands)
	return commands
}

// run executes the named command, the demo scenario when args are empty
func run(commands Commands, args []string) error {
	name := console.DefaultCommand
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	for _, cmd := range commands {
		if name == cmd.Name() {
			slog.Debug("command found", "command", cmd.Name())
			return cmd.Run(args)
		}
	}
	return errors.Errorf("command '%s' not found, see help", name)
}
