package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/IlikeChooros/go-alphabeta/internal/config"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
	"gopkg.in/yaml.v3"
)

// Position stored in a yaml file, either as notation or as rows
// of "X", "O" and "" (or ".") cells. Without both, an empty board
// of 'size' is used.
type positionFile struct {
	Notation string     `yaml:"notation"`
	Turn     string     `yaml:"turn"`
	Size     int        `yaml:"size"`
	Rows     [][]string `yaml:"rows"`
}

var errPositionSource = errors.New("use either --notation or --file")

func loadPositionFile(path string) (*ttt.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read position file: %w", err)
	}

	var file positionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode position file %s: %w", path, err)
	}
	return file.position()
}

func (f positionFile) position() (*ttt.Position, error) {
	if f.Notation != "" {
		return ttt.ParseNotation(f.Notation)
	}

	turn := ttt.Cross
	if f.Turn != "" {
		var err error
		if turn, err = ttt.ParsePlayer(f.Turn); err != nil {
			return nil, err
		}
	}

	if len(f.Rows) == 0 {
		return ttt.NewPosition(turn, f.Size)
	}
	return ttt.FromRows(turn, f.Rows)
}

// Resolve the starting position from the flags, falling back to
// an empty board described by the config
func resolvePosition(conf *config.Config, notation, file string) (*ttt.Position, error) {
	switch {
	case notation != "" && file != "":
		return nil, errPositionSource
	case notation != "":
		return ttt.ParseNotation(notation)
	case file != "":
		return loadPositionFile(file)
	}

	first, err := conf.FirstPlayer()
	if err != nil {
		return nil, err
	}
	return ttt.NewPosition(first, conf.Board.Size)
}
