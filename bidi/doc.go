// Package bidi implements the run-list core of the Unicode Bidirectional
// Algorithm: weak, neutral and implicit type resolution (rules W1-W7,
// N1-N2, I1-I2), paragraph-level detection, mirrored-glyph substitution
// (L4) and visual reordering (L2).
//
// It deliberately does not implement explicit directional formatting
// (LRE/RLE/PDF/LRI/RLI/FSI/PDI), isolates, overrides or bracket-pair (N0)
// resolution; the explicit-level step assigns every run the paragraph's
// base level and nothing else. The entry points take no per-position
// levels as input, so explicit embeddings resolved elsewhere are not
// reflected in the levels or the visual order this package produces.
//
// The package knows nothing about character sets: callers supply a
// Classifier (the Bidi class of a Glyph) and, optionally, a Mirror
// function (a Glyph's mirror partner). See the bidiclass subpackage for a
// reference implementation of both, backed by golang.org/x/text/unicode/bidi.
package bidi
