// Package model provides the intermediate representation (IR) for extracted
// transcript content.
//
// This package defines the user-facing data structures that represent a
// document as it moves through the pipeline. All reading and reflow
// operations ultimately produce these types, making them the primary API for
// consuming extracted content.
//
// # Document Structure
//
// The [Document] type represents a complete document as an ordered list of
// pages:
//
//	doc := model.NewDocument()
//	doc.AddPage(model.NewPage([]string{"line one", "line two"}))
//
// Each [Page] contains the raw text lines delivered by the upstream
// extraction engine, in their original order. Page boundaries are structural:
// there is never an in-band page-break token threaded through the line
// stream.
//
// # Reflowed Lines
//
// A [ReflowedLine] is a single line of final, reading-order text. Its
// Position is a monotonically increasing global index across the whole
// document, which later stages use to address spans of lines.
//
// # Speeches
//
// The [Speech] type is the terminal artifact: an ordered, speaker-attributed
// run of reflowed lines with JSON tags matching the output contract.
package model
