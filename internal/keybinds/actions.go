package keybinds

// Action identifies something the user can trigger with a key.
type Action string

const (
	// Global
	ActionQuit     Action = "quit"
	ActionOpenHelp Action = "open_help"

	// Navigation
	ActionNavigateUp   Action = "navigate_up"
	ActionNavigateDown Action = "navigate_down"
	ActionHalfPageUp   Action = "half_page_up"
	ActionHalfPageDown Action = "half_page_down"
	ActionGoToTop      Action = "go_to_top"
	ActionGoToBottom   Action = "go_to_bottom"
	ActionOpenGoto     Action = "open_goto"

	// Panels and categories
	ActionSwitchFocus  Action = "switch_focus"
	ActionNextCategory Action = "next_category"
	ActionPrevCategory Action = "prev_category"
	ActionSelect       Action = "select"

	// Detail panel
	ActionNextExample   Action = "next_example"
	ActionCopyExample   Action = "copy_example"
	ActionToggleAnswers Action = "toggle_answers"

	// Modals
	ActionOpenHistory   Action = "open_history"
	ActionOpenStats     Action = "open_stats"
	ActionClearHistory  Action = "clear_history"
	ActionToggleHistory Action = "toggle_history"
	ActionCloseModal    Action = "close_modal"
	ActionConfirm       Action = "confirm"
	ActionCancel        Action = "cancel"
)

// Context identifies which view a binding applies to. Keys shadow
// from specific context to global.
type Context string

const (
	ContextGlobal  Context = "global"
	ContextNormal  Context = "normal"
	ContextHistory Context = "history"
	ContextStats   Context = "stats"
	ContextHelp    Context = "help"
	ContextConfirm Context = "confirm"
)
