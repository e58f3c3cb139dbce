package recorddb

// Config holds configuration options for the Client
type Config struct {
	DBPath  string // Path to SQLite database file, or ":memory:"
	Verbose bool
}

func NewConfig(dbPath string, verbose bool) Config {
	return Config{
		DBPath:  dbPath,
		Verbose: verbose,
	}
}
