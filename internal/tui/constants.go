package tui

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Sidebar Layout
	SidebarWidthPercent = 30 // Sidebar takes 30% of terminal width
	SidebarMinWidth     = 28 // Never narrower than this

	// Viewport Padding and Borders
	ViewportBorderWidth = 2 // Width consumed by borders
	MainViewHeightOffset = 3 // m.height - 3 for panel content (status + borders)

	// Modal Dimensions
	ModalWidthMargin  = 6 // Standard horizontal margin (m.width - 6)
	ModalHeightMargin = 4 // Standard vertical margin (m.height - 4)

	// Status Bar
	StatusTruncateLen = 100 // Longer messages are cut with an ellipsis
)
