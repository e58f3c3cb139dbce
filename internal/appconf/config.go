package appconf

import (
	"strings"
	"time"
)

// Environment is the operating environment selected with -env.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag onto an Environment. Unknown
// values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the server: the port to
// listen on, the operating environment, accepted API keys, the per-key rate
// limit (requests per second), and how long resolved profiles stay cached.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
	CacheTTL  time.Duration
	LogLevel  string
}
