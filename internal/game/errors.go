package game

import "github.com/pkg/errors"

var (
	ErrUnsupportedMode = errors.New("unsupported mode")
	ErrInvalidBeatmap  = errors.New("invalid beatmap")
)
