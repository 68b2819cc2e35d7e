package config

import "time"

type DB struct {
	Url string `envconfig:"URL"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"8080"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[lumeo]"`
}

type ExchangeRate struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.exchangerate-api.com/v4"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`
}

type ExchangeRateCache struct {
	TTL time.Duration `envconfig:"TTL" default:"1h"`
}

type Cors struct {
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"*"`
}

type App struct {
	Env               string             `envconfig:"APP_ENV" default:"development"`
	Server            *Server            `envconfig:"SERVER"`
	Log               *Log               `envconfig:"LOG"`
	DB                *DB                `envconfig:"DATABASE"`
	ExchangeRate      *ExchangeRate      `envconfig:"EXCHANGE_RATE"`
	ExchangeRateCache *ExchangeRateCache `envconfig:"EXCHANGE_RATE_CACHE"`
	Cors              *Cors              `envconfig:"CORS"`
}
