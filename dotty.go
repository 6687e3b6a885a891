package segtree

import (
	"fmt"
	"io"
)

/*
Inspection output in Graphviz DOT format (for debugging purposes). Node
labels carry the inclusive range a node covers plus its printed value;
persistent trees render every recorded version into one digraph, which
makes subtree sharing between versions directly visible as shared nodes.
*/

func dotPreamble(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
}

func dotNodeStyles(isLeaf bool) string {
	s := ",style=filled"
	if isLeaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}

func dotNode(w io.Writer, id int, i, j int, value any, isLeaf bool) {
	label := fmt.Sprintf("[%d, %d]\\n%v", i, j, value)
	fmt.Fprintf(w, "\"%d\" [label=\"%s\"%s];\n", id, label, dotNodeStyles(isLeaf))
}

// Tree2Dot outputs the structure of a recursive-layout tree in Graphviz
// DOT format.
func Tree2Dot[N, V any](t *Recursive[N, V], w io.Writer) {
	if t == nil || t.n == 0 {
		T().Debugf("dot output of empty tree")
		io.WriteString(w, "strict digraph {}\n")
		return
	}
	dotPreamble(w)
	heapDot(w, t.nodes, 0, 0, t.n-1, func(n N) any { return t.alg.Value(n) })
	io.WriteString(w, "}\n")
}

// LazyTree2Dot outputs the structure of a lazy tree in Graphviz DOT
// format. Pending values are not forced; the dump reflects the tree as
// stored.
func LazyTree2Dot[N, V any](t *Lazy[N, V], w io.Writer) {
	if t == nil || t.n == 0 {
		T().Debugf("dot output of empty tree")
		io.WriteString(w, "strict digraph {}\n")
		return
	}
	dotPreamble(w)
	heapDot(w, t.nodes, 0, 0, t.n-1, func(n N) any { return t.alg.Value(n) })
	io.WriteString(w, "}\n")
}

func heapDot[N any](w io.Writer, nodes []N, cur, i, j int, value func(N) any) {
	dotNode(w, cur, i, j, value(nodes[cur]), i == j)
	if i == j {
		return
	}
	mid := (i + j) / 2
	left, right := 2*cur+1, 2*cur+2
	fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", cur, left)
	fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", cur, right)
	heapDot(w, nodes, left, i, mid, value)
	heapDot(w, nodes, right, mid+1, j, value)
}

// Versions2Dot outputs all recorded versions of a persistent tree in
// Graphviz DOT format. Arena slots shared between versions appear once.
func Versions2Dot[N, V any](t *Persistent[N, V], w io.Writer) {
	if t == nil || len(t.roots) == 0 {
		T().Debugf("dot output of empty tree")
		io.WriteString(w, "strict digraph {}\n")
		return
	}
	dotPreamble(w)
	visited := make([]bool, len(t.nodes))
	for _, root := range t.roots {
		arenaDot(w, visited, root, 0, t.n-1, func(slot int) (int, int, any) {
			n := t.nodes[slot]
			return t.alg.LeftChild(n), t.alg.RightChild(n), t.alg.Value(n)
		})
	}
	io.WriteString(w, "}\n")
}

// LazyVersions2Dot outputs all recorded versions of a lazy persistent tree
// in Graphviz DOT format. Pending values are not forced.
func LazyVersions2Dot[N, V any](t *LazyPersistent[N, V], w io.Writer) {
	if t == nil || len(t.roots) == 0 {
		T().Debugf("dot output of empty tree")
		io.WriteString(w, "strict digraph {}\n")
		return
	}
	dotPreamble(w)
	visited := make([]bool, len(t.nodes))
	for _, root := range t.roots {
		arenaDot(w, visited, root, 0, t.n-1, func(slot int) (int, int, any) {
			n := t.nodes[slot]
			return t.alg.LeftChild(n), t.alg.RightChild(n), t.alg.Value(n)
		})
	}
	io.WriteString(w, "}\n")
}

func arenaDot(w io.Writer, visited []bool, cur, i, j int, resolve func(slot int) (left, right int, value any)) {
	if visited[cur] {
		return
	}
	visited[cur] = true
	left, right, value := resolve(cur)
	dotNode(w, cur, i, j, value, i == j)
	if i == j {
		return
	}
	mid := (i + j) / 2
	fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", cur, left)
	fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", cur, right)
	arenaDot(w, visited, left, i, mid, resolve)
	arenaDot(w, visited, right, mid+1, j, resolve)
}
