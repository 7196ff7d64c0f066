package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger builds the process logger. Every record carries a session id so
// runs can be told apart in shared logs.
func NewLogger(w io.Writer, cfg *Config) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("session", uuid.NewString()), nil
}
