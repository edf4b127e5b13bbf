// Package postindex regenerates the derived indexes of a directory of
// markdown blog posts: a human-readable markdown index grouped by tag and
// series, a versioned JSON metadata file and, optionally, a SQLite catalog.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, slog/).
package postindex
