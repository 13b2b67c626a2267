// Package typographyplugin contributes the remaining SGR typography
// attributes the base table leaves out.
package typographyplugin

import (
	"github.com/LuizRaizen/tomato/internal/plugin"
)

type typographyPlugin struct{}

// New creates a new typography plugin instance.
func New() plugin.Plugin {
	return &typographyPlugin{}
}

var _ plugin.Plugin = (*typographyPlugin)(nil)

func init() {
	if err := plugin.RegisterFactory("typography", New); err != nil {
		panic(err)
	}
}

func (p *typographyPlugin) Name() string {
	return "typography"
}

func (p *typographyPlugin) Register() plugin.Registration {
	return plugin.Registration{
		Styles: map[string]string{
			"dim":           "2",
			"italic":        "3",
			"hidden":        "8",
			"strikethrough": "9",
		},
	}
}
