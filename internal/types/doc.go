/*
Package types defines core data structures used throughout refdeck.

# Overview

The types package provides shared type definitions for:
  - Topic records and their nested display data (code examples,
    resources, Q&A pairs)
  - Categories and user-authored topic files
  - Session state persisted between runs
  - View history entries and aggregate statistics

# Topic Records

Topic:
  - One self-contained card of educational content
  - Identified by a catalog-unique id
  - Descriptive fields are free-form display strings
  - Embedded code examples are opaque text, never executed

Category:
  - A named, ordered group of topics
  - Rendered as one navigation list in the sidebar

# Persistence Types

Session:
  - Last active category/topic, history toggle, recent-topic MRU
  - Stored as JSON in the config directory

HistoryEntry / TopicStats / CategoryStats:
  - Rows and aggregates from the SQLite view-history database
*/
package types
