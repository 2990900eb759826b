package main

import (
	"os"
	"time"

	"crocpad/internal/app"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	application, err := app.NewApplication(app.Options{})
	if err != nil {
		log.Fatal().Err(err).Msg("Application initialization failed")
	}

	application.Run()
}
