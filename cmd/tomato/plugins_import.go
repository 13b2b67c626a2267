package main

// Blank imports ensure plugin init() registration runs for the CLI binary.
import (
	_ "github.com/LuizRaizen/tomato/internal/plugins/blink"
	_ "github.com/LuizRaizen/tomato/internal/plugins/typography"
)
