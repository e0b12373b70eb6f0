package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMode sets the run mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Mode = mode
	return b
}

// WithStartFEN sets the starting position of new games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithStyledBoard enables lipgloss tile colours.
func (b *ConfigBuilder) WithStyledBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.Styled = enabled
	return b
}

// WithUnicode enables chess glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithReplay sets the script file and the number of workers replaying it.
func (b *ConfigBuilder) WithReplay(file string, workers int) *ConfigBuilder {
	b.cfg.Mode = Replay
	b.cfg.Replay.File = file
	b.cfg.Replay.Workers = workers
	return b
}

// WithServer sets the listen address of the HTTP API.
func (b *ConfigBuilder) WithServer(addr string) *ConfigBuilder {
	b.cfg.Mode = Serve
	b.cfg.Server.Addr = addr
	return b
}

// WithMaxGames caps the number of live games on the server.
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	b.cfg.Server.MaxGames = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
