// Package config holds the engine-wide rendering flags SPEC_FULL.md's
// ambient stack calls for. Unlike the teacher's internal/config package
// (which loads colorschemes and settings from files under a config
// directory), this engine's surface is parameterized by a handful of
// CLI flags and environment variables — there is no persistent settings
// file, because the
// engine has no state of its own beyond one invocation's RecordState.
package config

import "os"

// EngineConfig is the resolved set of flags a driver.Run call needs.
type EngineConfig struct {
	// UseUnicode selects Unicode glyphs (☑/▼) over ASCII ([*]/+) for
	// tristate boxes and expand arrows.
	UseUnicode bool

	// Debug enables the debug overlay double-draw and verbose logging,
	// mirroring the teacher's -debug flag (cmd/thicc/micro.go).
	Debug bool

	// DumpPath, if non-empty, receives the serialized RecordState after
	// every frame so a test harness or crash report can inspect engine
	// state without a live terminal.
	DumpPath string
}

// FromEnv reads the debug/unicode toggles from environment variables, the
// way the teacher reads TMUX/NO_COLOR from the environment in
// internal/config/colorscheme.go (InTmux) rather than a config file.
func FromEnv() EngineConfig {
	return EngineConfig{
		UseUnicode: os.Getenv("RECORD_NO_UNICODE") == "",
		Debug:      os.Getenv("RECORD_DEBUG") != "",
		DumpPath:   os.Getenv("RECORD_DUMP_PATH"),
	}
}
