package main

import (
	pre2tex "github.com/alnah/go-pre2tex"
	"github.com/alnah/go-pre2tex/internal/config"
	"github.com/alnah/go-pre2tex/internal/yamlutil"
)

// defaultConfigYAML renders the default configuration with the built-in
// markup values spelled out, so the generated file documents itself.
func defaultConfigYAML() ([]byte, error) {
	cfg := config.DefaultConfig()
	m := pre2tex.DefaultMarkup()
	cfg.Markup = config.MarkupConfig{
		HeaderMarker:   string(m.HeaderMarker),
		AlignMarker:    string(m.AlignMarker),
		BreakSentinel:  m.BreakSentinel,
		SplitSentinel:  m.SplitSentinel,
		MaxHeaderLevel: m.MaxHeaderLevel,
	}
	return yamlutil.Marshal(cfg)
}
