package plugin

import (
	"fmt"

	"github.com/LuizRaizen/tomato/internal/config"
	"github.com/LuizRaizen/tomato/internal/logger"
	"github.com/LuizRaizen/tomato/internal/style"
)

// Load resolves every plugin named in the configuration, in listed order,
// and merges its style contributions into the registry. A plugin that
// cannot be resolved or returns a malformed registration is logged and
// skipped; the remaining plugins still load. Partial styling capability
// beats aborting startup.
//
// Load must complete before the registry is handed to a formatter that
// other goroutines call into.
func Load(cfg *config.Config, reg *style.Registry, log *logger.Logger) []string {
	if cfg == nil {
		return nil
	}

	var loaded []string
	for _, name := range cfg.Plugins {
		plog := log.WithPlugin(name)

		factory, err := GetFactory(name)
		if err != nil {
			plog.Warn("plugin not found, skipping")
			continue
		}

		p := factory()
		if p == nil {
			plog.Warn("plugin factory returned nil, skipping")
			continue
		}

		registration := p.Register()
		if registration.Styles == nil {
			plog.Warn("plugin registration has no styles, skipping")
			continue
		}

		merged := 0
		for styleName, code := range registration.Styles {
			if styleName == "" || code == "" {
				plog.Warn(fmt.Sprintf("ignoring empty style entry %q=%q", styleName, code))
				continue
			}
			reg.Register(styleName, code)
			merged++
		}

		plog.Debug(fmt.Sprintf("registered %d style(s)", merged))
		loaded = append(loaded, name)
	}

	return loaded
}
