package config

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-alphabeta/pkg/search"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TTT_LOG_FORMAT" env-default:"text"`
	Board     Board  `yaml:"board"`
	Search    Search `yaml:"search"`
	Arena     Arena  `yaml:"arena"`
}

type Board struct {
	Size  int    `yaml:"size" env:"TTT_BOARD_SIZE" env-default:"3"`
	First string `yaml:"first" env:"TTT_BOARD_FIRST" env-default:"x"`
}

type Search struct {
	// Maximum plies searched, zero searches to the end of the game
	Depth int `yaml:"depth" env:"TTT_SEARCH_DEPTH" env-default:"0"`
}

type Arena struct {
	Games       int    `yaml:"games" env:"TTT_ARENA_GAMES" env-default:"20"`
	Workers     int    `yaml:"workers" env:"TTT_ARENA_WORKERS" env-default:"2"`
	RandomPlies int    `yaml:"random-plies" env:"TTT_ARENA_RANDOM_PLIES" env-default:"2"`
	Seed        int64  `yaml:"seed" env:"TTT_ARENA_SEED" env-default:"1"`
	MetricsFile string `yaml:"metrics-file" env:"TTT_ARENA_METRICS_FILE" env-default:""`
}

// Load reads the config file at 'path', environment variables override
// the file. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad - same as Load, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	if c.Board.Size < 1 || c.Board.Size > ttt.MaxSize {
		return fmt.Errorf("%w: board size %d", ErrInvalidConfig, c.Board.Size)
	}
	if _, err := c.FirstPlayer(); err != nil {
		return err
	}
	if c.Search.Depth < 0 {
		return fmt.Errorf("%w: search depth %d", ErrInvalidConfig, c.Search.Depth)
	}
	if c.Arena.Games < 0 || c.Arena.Workers < 1 || c.Arena.RandomPlies < 0 {
		return fmt.Errorf("%w: arena games=%d workers=%d random-plies=%d",
			ErrInvalidConfig, c.Arena.Games, c.Arena.Workers, c.Arena.RandomPlies)
	}
	return nil
}

func (c *Config) FirstPlayer() (ttt.Player, error) {
	player, err := ttt.ParsePlayer(c.Board.First)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return player, nil
}

func (c *Config) Limits() *search.Limits {
	return search.DefaultLimits().SetDepth(c.Search.Depth)
}
