package plugin

// Registration carries the contributions a plugin makes when loaded.
// Styles maps new style names to SGR attribute codes; entries merge into
// the style registry in configuration order, last write wins, and base
// style names may be shadowed.
type Registration struct {
	Styles map[string]string `yaml:"style"`
}

// Plugin is the contract every tomato plugin satisfies.
//
// Plugins are resolved by name from the compile-time factory table, so a
// configuration can enable any subset of them without code changes.
// Register is called exactly once per load and must not depend on other
// plugins having been loaded first.
type Plugin interface {
	// Name returns the identifier the configuration refers to.
	Name() string

	// Register returns the plugin's contributions. A nil Styles map is
	// treated as a malformed plugin and skipped.
	Register() Registration
}

// Factory constructs a plugin instance. Factories are registered at
// startup, before any configuration is loaded.
type Factory func() Plugin
