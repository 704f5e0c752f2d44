package console

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/kettari/weather-station/internal/bot"
	"github.com/kettari/weather-station/internal/chatgpt"
	"github.com/kettari/weather-station/internal/config"
	"github.com/kettari/weather-station/internal/entity"
	"github.com/kettari/weather-station/internal/notifier"
	"github.com/kettari/weather-station/internal/storage"
)

// observerFactory builds an optional observer, nil when its settings are absent
type observerFactory func(conf *config.Config, out io.Writer) (entity.Observer, error)

type WeatherSetCommand struct {
	conf     *config.Config
	out      io.Writer
	optional []observerFactory
}

func NewWeatherSetCommand() *WeatherSetCommand {
	cmd := WeatherSetCommand{
		out:      os.Stdout,
		optional: []observerFactory{recorderObserver, telegramObserver, advisorObserver},
	}
	return &cmd
}

func (cmd *WeatherSetCommand) Name() string {
	return "weather:set"
}

func (cmd *WeatherSetCommand) Description() string {
	return "broadcasts new weather to subscribers, history, Telegram and advisor when configured"
}

func (cmd *WeatherSetCommand) Run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: weather:set <weather>")
	}
	weather := strings.Join(args, " ")

	conf := cmd.conf
	if conf == nil {
		conf = config.GetConfig()
	}

	station, err := cmd.station(conf)
	if err != nil {
		return err
	}

	slog.Info("setting weather", "weather", weather)
	station.SetWeather(weather)

	return nil
}

// station attaches console users first, then every optional observer whose
// settings are present
func (cmd *WeatherSetCommand) station(conf *config.Config) (*entity.WeatherStation, error) {
	station := entity.NewWeatherStation()
	for _, name := range conf.Subscribers {
		station.Attach(entity.NewUserWithWriter(name, cmd.out))
	}

	for _, factory := range cmd.optional {
		observer, err := factory(conf, cmd.out)
		if err != nil {
			return nil, err
		}
		if observer != nil {
			station.Attach(observer)
		}
	}

	return station, nil
}

func recorderObserver(conf *config.Config, _ io.Writer) (entity.Observer, error) {
	if conf.RequireDatabase() != nil {
		slog.Debug("history disabled")
		return nil, nil
	}
	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Connect(); err != nil {
		return nil, err
	}
	return notifier.NewRecorder(manager), nil
}

func telegramObserver(conf *config.Config, _ io.Writer) (entity.Observer, error) {
	if conf.RequireTelegram() != nil {
		slog.Debug("telegram notifications disabled")
		return nil, nil
	}
	b, err := bot.CreateBot(conf.BotToken, conf.NotificationChatID)
	if err != nil {
		return nil, err
	}
	return notifier.NewTelegram("Telegram", b), nil
}

func advisorObserver(conf *config.Config, out io.Writer) (entity.Observer, error) {
	if conf.RequireOpenAI() != nil {
		slog.Debug("advisor disabled")
		return nil, nil
	}
	return notifier.NewAdvisor(chatgpt.NewChatGPT(conf.OpenAIApiKey, conf.OpenAILanguageModel), out), nil
}
