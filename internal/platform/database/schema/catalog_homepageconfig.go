package schema

// HomepageConfigTable represents the 'homepage_config' key/value table
type HomepageConfigTable struct {
	Table     string
	Key       string
	Value     string
	UpdatedAt string
}

// HomepageConfig is the schema definition for homepage_config
var HomepageConfig = HomepageConfigTable{
	Table:     "homepage_config",
	Key:       "key",
	Value:     "value",
	UpdatedAt: "updated_at",
}
