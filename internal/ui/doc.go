// Package ui provides helpers for rendering console progress feedback.
//
// The progress bar implements the diff engine's observer interface so
// per-file comparison progress stays visible on interactive terminals while
// structured telemetry continues to flow through the zap logger.
package ui
