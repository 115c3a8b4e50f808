package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile     string      `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Players     Players     `yaml:"players"`
	Colors      Colors      `yaml:"colors"`
	Sound       Sound       `yaml:"sound"`
	Redis       Redis       `yaml:"redis"`
	Diagnostics Diagnostics `yaml:"diagnostics"`
}

type Players struct {
	X string `yaml:"x" env:"PLAYER_X" env-default:"Player X"`
	O string `yaml:"o" env:"PLAYER_O" env-default:"Player O"`
}

// Colors are tcell color names ("red", "#ff8800").
type Colors struct {
	Board   string `yaml:"board" env:"COLOR_BOARD" env-default:"white"`
	X       string `yaml:"x" env:"COLOR_X" env-default:"red"`
	O       string `yaml:"o" env:"COLOR_O" env-default:"blue"`
	WinLine string `yaml:"win-line" env:"COLOR_WIN_LINE" env-default:"yellow"`
}

type Sound struct {
	Enabled bool          `yaml:"enabled" env:"SOUND_ENABLED" env-default:"true"`
	Gap     time.Duration `yaml:"gap" env:"SOUND_GAP" env-default:"120ms"`
}

type Redis struct {
	Enabled  bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	ScoreTTL time.Duration `yaml:"score-ttl" env:"REDIS_SCORE_TTL" env-default:"12h"`
}

// Diagnostics serves /ping and /metrics. An empty address turns it off.
type Diagnostics struct {
	Addr string `yaml:"addr" env:"DIAGNOSTICS_ADDR" env-default:""`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

// Palette resolves the configured names. Unknown names fall back to the terminal default.
func (that *Colors) Palette() (board, x, o, winLine tcell.Color) {
	return tcell.GetColor(that.Board), tcell.GetColor(that.X), tcell.GetColor(that.O), tcell.GetColor(that.WinLine)
}
