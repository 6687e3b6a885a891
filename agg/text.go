package agg

import (
	"strings"

	"github.com/npillmayer/uax/grapheme"
)

// TextSummary aggregates metrics of a text fragment: byte count, rune
// count, user-perceived characters (grapheme clusters) and newline count.
// Summaries of adjacent fragments add up, so TextSummary is its own scalar
// value type and TextAlgebra is a plain monoid.
type TextSummary struct {
	Bytes     int64
	Runes     int64
	Graphemes int64
	Lines     int64
}

// Summarize computes the summary of a single text fragment.
//
// Fragments must be grapheme-complete: a grapheme cluster (or a multi-byte
// rune) split across two fragments is counted once per fragment. Callers
// who slice raw text are responsible for splitting at cluster boundaries.
func Summarize(fragment string) TextSummary {
	gstr := grapheme.StringFromString(fragment)
	return TextSummary{
		Bytes:     int64(len(fragment)),
		Runes:     int64(len([]rune(fragment))),
		Graphemes: int64(gstr.Len()),
		Lines:     int64(strings.Count(fragment, "\n")),
	}
}

// TextNode is a text-metrics node.
type TextNode struct {
	summary TextSummary
}

// Value returns the aggregated text summary.
func (n TextNode) Value() TextSummary { return n.summary }

// TextAlgebra aggregates TextNode summaries; aggregate capability only.
type TextAlgebra struct{}

// Init creates a node from a precomputed fragment summary (see Summarize).
func (TextAlgebra) Init(value TextSummary) TextNode {
	return TextNode{summary: value}
}

// Combine adds the summaries of two adjacent fragments.
func (TextAlgebra) Combine(a, b TextNode) TextNode {
	return TextNode{summary: TextSummary{
		Bytes:     a.summary.Bytes + b.summary.Bytes,
		Runes:     a.summary.Runes + b.summary.Runes,
		Graphemes: a.summary.Graphemes + b.summary.Graphemes,
		Lines:     a.summary.Lines + b.summary.Lines,
	}}
}

// Value reads the aggregated summary.
func (TextAlgebra) Value(n TextNode) TextSummary { return n.summary }

// Texts initializes a leaf row from text fragments.
func Texts(fragments []string) []TextNode {
	var alg TextAlgebra
	out := make([]TextNode, len(fragments))
	for i, s := range fragments {
		out[i] = alg.Init(Summarize(s))
	}
	return out
}
