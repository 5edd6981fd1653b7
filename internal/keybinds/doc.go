/*
Package keybinds provides context-aware keyboard binding management.

# Overview

Keys map to actions within contexts (normal view, history modal, help,
...). Matching checks the specific context first and falls back to the
global context, so a modal can shadow a key the main view also uses.

Multi-key sequences are supported for vim motions: a lone 'g' is
reported as a partial match, and the following key either completes
the sequence ("gg") or discards it.

# Components

Registry (registry.go):
  - Central storage for keybindings
  - Context-aware key matching with global fallback
  - Multi-key sequence support
  - Validation against shadowing the quit key

Defaults (defaults.go):
  - The stock refdeck binding set (vim motions, mnemonic feature keys)
*/
package keybinds
