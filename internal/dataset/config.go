package dataset

// Config describes where the indicator table comes from and how its
// columns are named.
type Config struct {
	// DataPath is a local CSV path, an http(s) CSV URL, or a SQLite snapshot
	// ending in .db or .sqlite.
	DataPath string
	// DBPath, when set, receives a SQLite snapshot of CSV-loaded records.
	DBPath string

	EntityColumn      string
	TypeColumn        string
	DescriptionColumn string
	ValueColumn       string

	Verbose bool
}

const (
	DefaultEntityColumn      = "Country_Name"
	DefaultTypeColumn        = "Type"
	DefaultDescriptionColumn = "Data_Description"
	DefaultValueColumn       = "Value"
)

func (config Config) withDefaults() Config {
	if config.EntityColumn == "" {
		config.EntityColumn = DefaultEntityColumn
	}
	if config.TypeColumn == "" {
		config.TypeColumn = DefaultTypeColumn
	}
	if config.DescriptionColumn == "" {
		config.DescriptionColumn = DefaultDescriptionColumn
	}
	if config.ValueColumn == "" {
		config.ValueColumn = DefaultValueColumn
	}
	return config
}
