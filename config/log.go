package config

type Log struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json" env-description:"json or console"`
	File       string `yaml:"file" env:"LOG_FILE" env-description:"rotated log file, stderr when empty"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB" env-default:"100"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}

func (l Log) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("unknown LOG_LEVEL %q", l.Level)
	}
	if l.Encoding != "json" && l.Encoding != "console" {
		return invalid("unknown LOG_ENCODING %q", l.Encoding)
	}
	return nil
}
