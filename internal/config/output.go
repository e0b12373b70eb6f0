package config

// OutputConfig holds settings related to board and result output.
type OutputConfig struct {
	// Styled colours tiles with lipgloss instead of plain text
	Styled bool

	// Unicode draws pieces as chess glyphs instead of letters
	Unicode bool

	// Coordinates prints rank numbers and the file footer
	Coordinates bool

	// LightTile and DarkTile are the lipgloss background colours of tiles
	LightTile string
	DarkTile  string

	// JSONFormat writes replay results as JSON instead of text
	JSONFormat bool

	// ShowBoard prints the final board after each replayed script
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Coordinates: true,
		LightTile:   "#d7c29e",
		DarkTile:    "#8b6b4a",
	}
}
