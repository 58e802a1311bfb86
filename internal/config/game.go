package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/eelmines/internal/mines"
)

type GameParamsDTO struct {
	Width     int `schema:"width"`
	Height    int `schema:"height"`
	MineCount int `schema:"mine_count"`
}

// DefaultGameParams is the classic 8x8 board with 10 mines.
var DefaultGameParams = GameParamsDTO{Width: 8, Height: 8, MineCount: 10}

var gameParamsEnv = map[string]string{
	"width":      "EELMINES_WIDTH",
	"height":     "EELMINES_HEIGHT",
	"mine_count": "EELMINES_MINE_COUNT",
}

// ParseGameParams reads board params from key=value arguments, falling back
// to EELMINES_* env variables and then to [DefaultGameParams]. Keys may be
// written with leading dashes.
func ParseGameParams(args []string) (mines.GameParams, error) {
	src := url.Values{}
	for key, env := range gameParamsEnv {
		if value, ok := os.LookupEnv(env); ok {
			src.Set(key, value)
		}
	}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return mines.GameParams{}, fmt.Errorf(
				"%w: argument %q is not key=value", mines.ErrInvalidConfiguration, arg,
			)
		}
		src.Set(strings.TrimLeft(key, "-"), value)
	}

	dto := DefaultGameParams
	if err := schema.NewDecoder().Decode(&dto, src); err != nil {
		return mines.GameParams{}, fmt.Errorf(
			"%w: %w", mines.ErrInvalidConfiguration, err,
		)
	}

	params := mines.GameParams(dto)
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}
