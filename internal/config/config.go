package config

import (
	"os"
	"strconv"

	"github.com/Matthewweb42/Tic-Tac-Move/internal/game"
)

// Config is the process-wide configuration, read from the environment.
// BoardSize is the single rules parameter: it sets the win length and
// the per-piece premove cap (size - 2).
type Config struct {
	HTTPAddr  string
	BoardSize int
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	size := getenvInt("BOARD_SIZE", game.DefaultBoardSize)
	if size < game.MinBoardSize {
		size = game.MinBoardSize
	}
	return Config{
		HTTPAddr:  getenvStr("HTTP_ADDR", ":8080"),
		BoardSize: size,
	}
}
