package cli

import "cute/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigPaths []string
	NoSelect    bool
	Verbose     bool
	Record      bool
	JSONOnly    bool
	Interactive bool
	Limit       int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigPaths: f.ConfigPaths,
		NoSelect:    f.NoSelect,
		Verbose:     f.Verbose,
		Record:      f.Record,
		JSONOnly:    f.JSONOnly,
		Interactive: f.Interactive,
		Limit:       f.Limit,
	}
}
