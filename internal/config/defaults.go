package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default report JSON file name
	DefaultOutputJSONFile = "test-report.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultConfigGlob matches selection config files when no explicit
	// paths are supplied
	DefaultConfigGlob = "*.cute"
	// DefaultHistoryTable is the MySQL table recorded runs go to
	DefaultHistoryTable = "cute_runs"
	// DefaultHistoryLimit is how many recent runs the history command shows
	DefaultHistoryLimit = 20
)

// DefaultPathsToIgnore are the default directories to skip when
// scanning for selection config files
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
	"dist",
	"build",
}
