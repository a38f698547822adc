package vlist

// Style defines the visual appearance of list UI elements.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32

	// Background colors
	BackgroundColor uint32
	RowBgAltColor   uint32 // Alternate row background

	// Selection colors
	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	// Border
	BorderColor uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Sizing
	FontScale   float32
	CharWidth   float32
	CharHeight  float32
	ItemSpacing float32 // Default gap between rows

	// Scrollbar
	ScrollbarSize float32
}

// DefaultStyle returns the default style with sensible defaults.
// Char metrics match the backend's 7x13 font atlas.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		BackgroundColor: RGBA(20, 20, 20, 230),
		RowBgAltColor:   RGBA(30, 30, 30, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		BorderColor: RGBA(80, 80, 80, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		FontScale:   1.0,
		CharWidth:   FontGlyphWidth,
		CharHeight:  FontGlyphHeight,
		ItemSpacing: 4,

		ScrollbarSize: 12,
	}
}

// DarkStyle returns a darker theme with a blue selection accent.
func DarkStyle() Style {
	s := DefaultStyle()
	s.BackgroundColor = RGBA(12, 12, 14, 245)
	s.RowBgAltColor = RGBA(22, 22, 26, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255) // Royal blue
	s.ScrollbarBgColor = RGBA(18, 18, 20, 255)
	return s
}
