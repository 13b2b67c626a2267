// Package blinkplugin contributes the blinking text styles.
package blinkplugin

import (
	"github.com/LuizRaizen/tomato/internal/plugin"
)

type blinkPlugin struct{}

// New creates a new blink plugin instance.
func New() plugin.Plugin {
	return &blinkPlugin{}
}

var _ plugin.Plugin = (*blinkPlugin)(nil)

func init() {
	if err := plugin.RegisterFactory("blink", New); err != nil {
		panic(err)
	}
}

func (p *blinkPlugin) Name() string {
	return "blink"
}

func (p *blinkPlugin) Register() plugin.Registration {
	return plugin.Registration{
		Styles: map[string]string{
			"blink":       "5",
			"rapid_blink": "6",
		},
	}
}
