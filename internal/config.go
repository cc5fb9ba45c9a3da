package internal

import (
	"fmt"
	"game-hub/domain"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	NumberOfWorkers     int           `env:"NUMBER_OF_WORKERS,required=true" validate:"min=1"`
	HousekeepingWorkers int           `env:"HOUSEKEEPING_WORKERS,default=1" validate:"min=1"`
	PollInterval        time.Duration `env:"POLL_INTERVAL,default=10ms" validate:"gt=0"`
	IdlePollInterval    time.Duration `env:"IDLE_POLL_INTERVAL,default=5ms" validate:"gt=0"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,required=true" validate:"gt=0"`
	MetricInterval      time.Duration `env:"METRIC_INTERVAL,required=true" validate:"gt=0"`
	ReportInterval      time.Duration `env:"REPORT_INTERVAL,default=5s" validate:"gt=0"`
	MemoryTTL           time.Duration `env:"MEMORY_TTL,default=8760h" validate:"gt=0"`
	HalmaTTL            time.Duration `env:"HALMA_TTL,default=8760h" validate:"gt=0"`
	LimitRecords        *int          `env:"LIMIT_RECORDS"`
	Seed                uint64        `env:"SEED"`
	CensorMask          string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*" validate:"len=1"`
	// DEBUG_PORT serves the inspect page when set
	DebugPort           int           `env:"DEBUG_PORT,default=0" validate:"min=0,max=65535"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel            string        `env:"LOG_LEVEL,required=true" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// LoadConfig reads the environment, completed by a .env file when present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// KindSpecs applies the configured time limits to the default kinds.
func (c Config) KindSpecs() []domain.KindSpec {
	specs := domain.DefaultKindSpecs()
	for i := range specs {
		switch specs[i].Kind {
		case domain.KindMemory:
			specs[i].TTL = c.MemoryTTL
		case domain.KindHalma:
			specs[i].TTL = c.HalmaTTL
		}
	}
	return specs
}

// RandomSeed falls back on the clock when no seed was configured.
func (c Config) RandomSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Mask is the rune replacing censored characters.
func (c Config) Mask() rune {
	return []rune(c.CensorMask)[0]
}
