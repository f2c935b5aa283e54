package core

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the shared console logger for the harness and binaries.
// Engines never log.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}).
	With().Timestamp().Logger()
