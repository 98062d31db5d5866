package internal

import (
	"fmt"
	"time"
)

type Config struct {
	GeminiAPIKey  string        `env:"GEMINI_API_KEY,required=true"`
	GeminiModel   string        `env:"GEMINI_MODEL,default=gemini-2.5-flash"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT,default=30s"`

	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,default=./data/bluge"`

	PaymentDelay      time.Duration `env:"PAYMENT_DELAY,default=2s"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`

	BlocklistFilepath string `env:"BLOCKLIST_FILEPATH"`
	CharReplacement   string `env:"CHARACTER_REPLACEMENT,default=*"`

	LogLevel string `env:"LOG_LEVEL,default=INFO"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
