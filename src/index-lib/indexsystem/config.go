package indexsystem

// ConfigKey is the configuration subtree consumed by New.
const ConfigKey = "indexsystem"

// Config holds the construction options for an index system.
type Config struct {
	// StorePath is the filesystem area holding the serialized unit artifacts.
	StorePath string `yaml:"storePath"`
	// DatabasePath locates the on-disk database.
	DatabasePath string `yaml:"databasePath"`
	// ReadOnly opens the database without write access, skips creating the
	// store path, and is forwarded to the datastore. The store opener does not
	// receive it.
	ReadOnly bool `yaml:"readOnly"`
	// UseExplicitOutputUnits restricts visibility to explicitly registered
	// unit output paths instead of everything found in the store.
	UseExplicitOutputUnits bool `yaml:"useExplicitOutputUnits"`
	// EnableOutOfDateFileWatching lets the datastore watch source files and
	// report stale units as they change.
	EnableOutOfDateFileWatching bool `yaml:"enableOutOfDateFileWatching"`
	// ListenToUnitEvents subscribes the datastore to store unit events.
	ListenToUnitEvents bool `yaml:"listenToUnitEvents"`
	// WaitUntilDoneInitializing blocks construction until the datastore has
	// finished its initial scan.
	WaitUntilDoneInitializing bool `yaml:"waitUntilDoneInitializing"`
	// InitialDatabaseSize is a size hint for the database engine. Zero or
	// negative means the engine default.
	InitialDatabaseSize int64 `yaml:"initialDatabaseSize"`
}
