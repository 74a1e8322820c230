// Package text provides text cleanup for raw lines recovered from
// machine-readable documents.
//
// Upstream extraction engines frequently emit non-breaking spaces, soft
// hyphens, presentation-form ligatures, and other compatibility characters
// that break the whitespace heuristics used by column reflow. The
// [Normalize] function folds these into their plain equivalents before any
// splitting takes place.
package text
