// Package source reads documents into the model IR from the formats the
// upstream extraction engine delivers.
//
// The ingestion contract is the same for every reader: a document decodes
// to an ordered sequence of pages, and each page to an ordered sequence of
// raw text lines. Page boundaries become structural immediately at the
// ingestion edge; in-band delimiters such as the form feed never survive
// into the line stream.
//
// Three formats are supported:
//
//   - Plain text with form-feed (\f) page delimiters, the classic layout
//     output of text extraction engines ([FromText]).
//   - JSON with an explicit pages array ([FromJSON]).
//   - Paged HTML exports ([FromHTML]).
//
// [Open] detects the format from the file name or content and dispatches
// to the right reader.
package source
