package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("api.base_url"); implementations handle
// persistence and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if missing or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if missing or not an integer.
	GetInt(key string) int

	// GetFloat retrieves a float value. Integers are converted.
	// Returns 0 if the key is missing or not numeric.
	GetFloat(key string) float64

	// GetBool retrieves a boolean value, or false if missing.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice, or nil if missing.
	GetStringSlice(key string) []string

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage, replacing in-memory values.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
