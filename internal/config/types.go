package config

// Config represents the tomato configuration document. The file is YAML,
// which also accepts plain JSON documents, so the historical
// {"plugins": [...]} shape parses unchanged.
type Config struct {
	Plugins []string `yaml:"plugins" validate:"omitempty,dive,plugin_name"`
}
