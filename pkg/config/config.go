package config

import (
	"time"
)

type DB struct {
	Url          string        `envconfig:"URL"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnLifetime time.Duration `envconfig:"CONN_LIFETIME" default:"1h"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"1h"`
}

type Auth struct {
	Jwt        *Jwt `envconfig:"JWT"`
	BcryptCost int  `envconfig:"BCRYPT_COST" default:"10"`
}

type Log struct {
	Level  int    `envconfig:"LEVEL" default:"0"`
	Format string `envconfig:"FORMAT" default:"json"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// App is the process-wide configuration, loaded once at startup and
// passed explicitly to constructors. It is never mutated afterwards.
type App struct {
	Env    string  `envconfig:"APP_ENV" default:"development"`
	Server *Server `envconfig:"SERVER"`
	Log    *Log    `envconfig:"LOG"`
	DB     *DB     `envconfig:"DATABASE"`
	Auth   *Auth   `envconfig:"AUTH"`
}
