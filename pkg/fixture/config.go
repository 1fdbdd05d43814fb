package fixture

import "path/filepath"

const defaultSchemaDir = "schemas/circuit/v1.0.0"

// Config holds the locations checked by [Walk] and [Check].
type Config struct {
	// SchemaPath is the schema document all fixtures are checked against.
	SchemaPath string
	// ValidDir holds fixtures that must validate.
	ValidDir string
	// InvalidDir holds fixtures that must fail validation.
	InvalidDir string
}

// DefaultConfig returns the conventional schema and fixture locations,
// relative to the working directory.
func DefaultConfig() Config {
	return Config{
		SchemaPath: filepath.Join(defaultSchemaDir, "schema.json"),
		ValidDir:   filepath.Join(defaultSchemaDir, "examples", "valid"),
		InvalidDir: filepath.Join(defaultSchemaDir, "examples", "invalid"),
	}
}
