package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const defaultSubscribers = "Lisa,Paul"

type Config struct {
	Debug               bool
	Subscribers         []string
	DbConnectionString  string
	BotToken            string
	NotificationChatID  string
	OpenAIApiKey        string
	OpenAILanguageModel string
}

var config *Config

// GetConfig reads the environment once. Nothing is required here, each
// feature checks its own settings with the Require* methods.
func GetConfig() *Config {
	if config != nil {
		return config
	}
	config = Load()
	return config
}

// Load reads the configuration from the environment, bypassing the cache
func Load() *Config {
	conf := &Config{}

	// Debug mode
	debug := os.Getenv("STATION_DEBUG")
	if strings.ToLower(debug) == "true" || debug == "1" {
		conf.Debug = true
	}
	if conf.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Console subscribers
	subscribers := os.Getenv("STATION_SUBSCRIBERS")
	if len(subscribers) == 0 {
		subscribers = defaultSubscribers
	}
	conf.Subscribers = splitNames(subscribers)

	conf.DbConnectionString = os.Getenv("STATION_DB_STRING")
	conf.BotToken = os.Getenv("STATION_TELEGRAM_TOKEN")
	conf.NotificationChatID = os.Getenv("STATION_NOTIFICATION_CHAT_ID")
	conf.OpenAIApiKey = os.Getenv("STATION_OPENAI_API_KEY")
	conf.OpenAILanguageModel = os.Getenv("STATION_OPENAI_LANGUAGE_MODEL")

	slog.Debug("configuration parameters",
		"STATION_DEBUG", conf.Debug,
		"STATION_SUBSCRIBERS", conf.Subscribers,
		"STATION_DB_STRING_SET", len(conf.DbConnectionString) > 0,
		"STATION_TELEGRAM_TOKEN_SET", len(conf.BotToken) > 0,
		"STATION_NOTIFICATION_CHAT_ID", conf.NotificationChatID,
		"STATION_OPENAI_API_KEY_SET", len(conf.OpenAIApiKey) > 0,
		"STATION_OPENAI_LANGUAGE_MODEL", conf.OpenAILanguageModel)

	return conf
}

func (c *Config) RequireDatabase() error {
	if len(c.DbConnectionString) == 0 {
		return errors.New("database connection string is not set in the environment (STATION_DB_STRING)")
	}
	return nil
}

func (c *Config) RequireTelegram() error {
	if len(c.BotToken) == 0 {
		return errors.New("bot token not found in the environment (STATION_TELEGRAM_TOKEN)")
	}
	if len(c.NotificationChatID) == 0 {
		return errors.New("notification chat IDs not found in the environment (STATION_NOTIFICATION_CHAT_ID)")
	}
	return nil
}

func (c *Config) RequireOpenAI() error {
	if len(c.OpenAIApiKey) == 0 {
		return errors.New("Open AI API key not found in the environment (STATION_OPENAI_API_KEY)")
	}
	if len(c.OpenAILanguageModel) == 0 {
		return errors.New("language model not found in the environment (STATION_OPENAI_LANGUAGE_MODEL)")
	}
	return nil
}

func splitNames(list string) []string {
	var result []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); len(name) > 0 {
			result = append(result, name)
		}
	}
	return result
}
