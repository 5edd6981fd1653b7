package keybinds

// NewDefaultRegistry builds the stock keybinding set.
//
// Layout follows vim conventions for motion plus single mnemonic keys
// for features (h history, s stats, ? help, y yank).
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	// Global
	r.Register(ContextGlobal, "q", ActionQuit)
	r.Register(ContextGlobal, "ctrl+c", ActionQuit)
	r.Register(ContextGlobal, "?", ActionOpenHelp)

	// Normal mode - motion
	r.RegisterMultiple(ContextNormal, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextNormal, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextNormal, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextNormal, "ctrl+d", ActionHalfPageDown)
	r.Register(ContextNormal, "gg", ActionGoToTop)
	r.Register(ContextNormal, "G", ActionGoToBottom)
	r.Register(ContextNormal, ":", ActionOpenGoto)

	// Normal mode - panels and categories
	r.Register(ContextNormal, "tab", ActionSwitchFocus)
	r.RegisterMultiple(ContextNormal, []string{"]", "right", "l"}, ActionNextCategory)
	r.RegisterMultiple(ContextNormal, []string{"[", "left"}, ActionPrevCategory)
	r.Register(ContextNormal, "enter", ActionSelect)

	// Normal mode - detail panel
	r.Register(ContextNormal, "e", ActionNextExample)
	r.Register(ContextNormal, "y", ActionCopyExample)
	r.Register(ContextNormal, "a", ActionToggleAnswers)

	// Normal mode - modals
	r.Register(ContextNormal, "h", ActionOpenHistory)
	r.Register(ContextNormal, "s", ActionOpenStats)

	// History modal
	r.RegisterMultiple(ContextHistory, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHistory, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHistory, "enter", ActionSelect)
	r.Register(ContextHistory, "D", ActionClearHistory)
	r.Register(ContextHistory, "t", ActionToggleHistory)
	r.RegisterMultiple(ContextHistory, []string{"esc", "h"}, ActionCloseModal)

	// Stats modal
	r.RegisterMultiple(ContextStats, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextStats, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextStats, []string{"esc", "s"}, ActionCloseModal)

	// Help
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextHelp, []string{"esc", "?"}, ActionCloseModal)

	// Confirmation prompts
	r.Register(ContextConfirm, "y", ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "esc"}, ActionCancel)

	return r
}
