package config

import "time"

type Client struct {
	ServerAddr     string        `yaml:"server_addr" env:"SERVER_ADDR" env-default:"127.0.0.1:8080"`
	Name           string        `yaml:"name" env:"SERVICE_NAME" env-default:"powgate-client"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"CONNECT_TIMEOUT" env-default:"5s"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"10s" env-description:"deadline for reading the challenge and the reward"`
	SolveTimeout   time.Duration `yaml:"solve_timeout" env:"SOLVE_TIMEOUT" env-default:"1m"`
	RetryAttempts  int           `yaml:"retry_attempts" env:"RETRY_ATTEMPTS" env-default:"3"`
	RetryDelay     time.Duration `yaml:"retry_delay" env:"RETRY_DELAY" env-default:"1s"`
	BufferSize     int           `yaml:"buffer_size" env:"BUFFER_SIZE" env-default:"1024"`
}

func (c Client) Validate() error {
	if c.ServerAddr == "" {
		return invalid("SERVER_ADDR is empty")
	}
	if c.RetryAttempts < 1 {
		return invalid("RETRY_ATTEMPTS must be at least 1, got %d", c.RetryAttempts)
	}
	if c.BufferSize <= 0 {
		return invalid("BUFFER_SIZE must be positive, got %d", c.BufferSize)
	}
	if c.ConnectTimeout <= 0 || c.RequestTimeout <= 0 || c.SolveTimeout <= 0 || c.RetryDelay < 0 {
		return invalid("client timeouts must be positive")
	}
	return nil
}
