// Package layout reconstructs reading order from two-column transcript
// pages and removes page boilerplate.
//
// Upstream extraction engines emit a physical two-column page as single
// lines of interleaved left/right text separated by wide space runs.
// Recovering reading order requires stripping the boilerplate that frames
// the content, separating each line into its column fragments, and
// serializing one column's full page body before the other's.
//
// # Stripping
//
// The [Stripper] removes first-page header and footer boilerplate and the
// running header that follows every page break:
//
//	stripper := layout.NewStripper()
//	result, err := stripper.Strip(doc)
//
// The first-page header is located by an anchor pattern (the presiding
// officer introduction). A document without the anchor cannot be processed
// safely and fails with [ErrHeaderNotFound].
//
// # Reflow
//
// The [Reflower] splits each surviving line on runs of two or more spaces,
// assigns the fragments to the left or right column, corrects overflow
// caused by irregular spacing, and emits a single reading-order sequence
// per page:
//
//	reflower := layout.NewReflower()
//	lines, degenerate := reflower.ReflowDocument(doc)
//
// # Configuration
//
// Both components use corpus-calibrated configuration:
//
//	config := layout.DefaultReflowConfig()
//	config.LeftColWidth = 10
//	reflower := layout.NewReflowerWithConfig(config)
//
// The defaults are tuned to one document family; corpora with different
// typography must recalibrate them.
package layout
