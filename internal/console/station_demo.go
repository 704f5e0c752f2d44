package console

import (
	"io"
	"log/slog"
	"os"

	"github.com/kettari/weather-station/internal/entity"
)

// DefaultCommand runs when the console is started without arguments
const DefaultCommand = "station:demo"

type StationDemoCommand struct {
	out io.Writer
}

func NewStationDemoCommand() *StationDemoCommand {
	cmd := StationDemoCommand{out: os.Stdout}
	return &cmd
}

func (cmd *StationDemoCommand) Name() string {
	return DefaultCommand
}

func (cmd *StationDemoCommand) Description() string {
	return "notifies Lisa and Paul about sunny weather"
}

func (cmd *StationDemoCommand) Run(_ []string) error {
	slog.Debug("running weather station demo")

	weatherStation := entity.NewWeatherStation()

	weatherStation.Attach(entity.NewUserWithWriter("Lisa", cmd.out))
	weatherStation.Attach(entity.NewUserWithWriter("Paul", cmd.out))

	weatherStation.SetWeather("Ensoleillé")

	return nil
}
