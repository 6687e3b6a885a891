package segtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Console rendering of trees for interactive debugging: one line per node,
// indented by depth, colorized if the writer is a terminal. Long value
// lines are clamped to the terminal width.

type consoleSink struct {
	w       io.Writer
	width   int
	ranges  *color.Color
	leaves  *color.Color
	colored bool
}

func newConsoleSink(w io.Writer) *consoleSink {
	sink := &consoleSink{w: w, width: 80}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			sink.width = cols
		}
		sink.colored = true
		sink.ranges = color.New(color.FgCyan)
		sink.leaves = color.New(color.FgGreen)
	}
	return sink
}

func (sink *consoleSink) line(depth, i, j int, value any) {
	rng := fmt.Sprintf("[%d, %d]", i, j)
	if sink.colored {
		if i == j {
			rng = sink.leaves.Sprint(rng)
		} else {
			rng = sink.ranges.Sprint(rng)
		}
	}
	s := fmt.Sprintf("%s%s %v", strings.Repeat("  ", depth), rng, value)
	// Clamp on runes, not bytes; a byte cut could split a multi-byte rune.
	if !sink.colored {
		if r := []rune(s); len(r) > sink.width {
			s = string(r[:sink.width-1]) + "…"
		}
	}
	fmt.Fprintln(sink.w, s)
}

// DumpTree writes an indented rendering of a recursive-layout tree, one
// node per line, to w.
func DumpTree[N, V any](t *Recursive[N, V], w io.Writer) {
	if t == nil || t.n == 0 {
		fmt.Fprintln(w, "(empty tree)")
		return
	}
	sink := newConsoleSink(w)
	heapDump(sink, t.nodes, 0, 0, 0, t.n-1, func(n N) any { return t.alg.Value(n) })
}

// LazyDumpTree writes an indented rendering of a lazy tree to w. Pending
// values are not forced; nodes with a staged value are marked.
func LazyDumpTree[N, V any](t *Lazy[N, V], w io.Writer) {
	if t == nil || t.n == 0 {
		fmt.Fprintln(w, "(empty tree)")
		return
	}
	sink := newConsoleSink(w)
	heapDump(sink, t.nodes, 0, 0, 0, t.n-1, func(n N) any {
		if v, ok := t.alg.LazyValue(&n); ok {
			return fmt.Sprintf("%v  (pending %v)", t.alg.Value(n), v)
		}
		return t.alg.Value(n)
	})
}

func heapDump[N any](sink *consoleSink, nodes []N, depth, cur, i, j int, value func(N) any) {
	sink.line(depth, i, j, value(nodes[cur]))
	if i == j {
		return
	}
	mid := (i + j) / 2
	heapDump(sink, nodes, depth+1, 2*cur+1, i, mid, value)
	heapDump(sink, nodes, depth+1, 2*cur+2, mid+1, j, value)
}

// DumpVersion writes an indented rendering of one recorded version of a
// persistent tree to w.
func DumpVersion[N, V any](t *Persistent[N, V], version int, w io.Writer) {
	assert(0 <= version && version < len(t.roots), "segtree: unknown version")
	sink := newConsoleSink(w)
	arenaDump(sink, 0, t.roots[version], 0, t.n-1, func(slot int) (int, int, any) {
		n := t.nodes[slot]
		return t.alg.LeftChild(n), t.alg.RightChild(n), t.alg.Value(n)
	})
}

func arenaDump(sink *consoleSink, depth, cur, i, j int, resolve func(slot int) (left, right int, value any)) {
	left, right, value := resolve(cur)
	sink.line(depth, i, j, value)
	if i == j {
		return
	}
	mid := (i + j) / 2
	arenaDump(sink, depth+1, left, i, mid, resolve)
	arenaDump(sink, depth+1, right, mid+1, j, resolve)
}
