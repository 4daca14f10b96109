package config

import (
	"net"
	"time"
)

type Server struct {
	Host         string        `yaml:"host" env:"HOST" env-default:"127.0.0.1" env-description:"interface to bind"`
	Port         string        `yaml:"port" env:"PORT" env-default:"8080" env-description:"port to bind"`
	Name         string        `yaml:"name" env:"SERVICE_NAME" env-default:"powgate" env-description:"service name attached to every log line"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" env-default:"30s" env-description:"deadline for the nonce read, 0 waits forever"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" env-default:"10s" env-description:"deadline for each write, 0 waits forever"`
	KeepAlive    time.Duration `yaml:"keep_alive" env:"KEEP_ALIVE" env-default:"15s"`
	BufferSize   int           `yaml:"buffer_size" env:"BUFFER_SIZE" env-default:"1024" env-description:"nonce read buffer, longer input is truncated"`
	AcceptRate   float64       `yaml:"accept_rate" env:"ACCEPT_RATE" env-default:"0" env-description:"accepted connections per second, 0 is unlimited"`
	AcceptBurst  int           `yaml:"accept_burst" env:"ACCEPT_BURST" env-default:"50"`
	MetricsAddr  string        `yaml:"metrics_addr" env:"METRICS_ADDR" env-description:"address of the prometheus endpoint, empty disables it"`
	ShutdownWait time.Duration `yaml:"shutdown_wait" env:"SHUTDOWN_WAIT" env-default:"5s"`
}

func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

func (s Server) Validate() error {
	if s.Port == "" {
		return invalid("PORT is empty")
	}
	if s.BufferSize <= 0 {
		return invalid("BUFFER_SIZE must be positive, got %d", s.BufferSize)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.KeepAlive < 0 || s.ShutdownWait < 0 {
		return invalid("timeouts must not be negative")
	}
	if s.AcceptRate < 0 {
		return invalid("ACCEPT_RATE must not be negative, got %v", s.AcceptRate)
	}
	if s.AcceptRate > 0 && s.AcceptBurst <= 0 {
		return invalid("ACCEPT_BURST must be positive when ACCEPT_RATE is set")
	}
	return nil
}

type Reward struct {
	QuotesFile string `yaml:"quotes_file" env:"QUOTES_FILE" env-description:"yaml list of quotes, built-in list when empty"`
}
