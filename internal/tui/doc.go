/*
Package tui implements the interactive terminal interface.

# Overview

The interface is a bubbletea program with a two-pane layout: a sidebar
listing the topics of the active category, and a detail pane showing
the selected topic. Modal overlays cover help, view history, and study
statistics.

# State flow

Selection state (active category + active topic) lives in the
selection package; the model never duplicates it. Every selection
change flows one way: a key handler mutates the selection, then
afterSelectionChange refreshes the detail pane and persists the
position to the session file. Renderers only read.

The sidebar renders exactly the active category's topics. At most one
row is highlighted; an active topic id that matches no row highlights
nothing, and an unknown category renders an empty list rather than
failing.

# Components

Model (model.go):
  - Central state struct and bubbletea Update/View
  - Mode enum for modal routing

Keys (keys.go):
  - Per-mode key handlers dispatching through the keybinds registry
  - Multi-key vim motions (gg) via the registry's sequence matching

Actions (actions.go):
  - Selection movement, category switching, topic opening
  - Clipboard copy of the focused code example
  - Async commands for the history database

Render (render.go):
  - lipgloss styles with adaptive light/dark colors
  - Split-pane main view, status bar, and modal frames
*/
package tui
