package cli

// Config holds formcheck settings read from the environment.
type Config struct {
	Env          string `env:"FORMCHECK_ENV" envDefault:"development"`
	LogLevel     string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"FORMCHECK_LOG_FORMAT" envDefault:"text"`
	Concurrency  int    `env:"FORMCHECK_CONCURRENCY" envDefault:"4"`
	OutputFormat string `env:"FORMCHECK_OUTPUT_FORMAT" envDefault:"json"`
}

// FileKey is the context key under which the state file being validated is stored.
type FileKey struct{}
