/*
Package segtree provides a family of segment-tree engines: array-backed,
balanced binary structures that answer range-aggregate queries and
point/range mutations over a fixed-length sequence, parameterized by an
arbitrary associative combining operation.

Five engine variants share one node-capability model but differ in storage
layout, mutation strategy and versioning:

  - Iterative: flat 2n-slot array built bottom-up; point update, range query.
  - Recursive: implicit heap array of 4n slots; point update, range query,
    predicate-guided prefix search (LowerBound).
  - Lazy: recursive layout plus deferred range updates with push-down.
  - Persistent: an append-only node arena with one root per version;
    every point update copies the O(log n) nodes on its path and records a
    new immutable version.
  - LazyPersistent: path-copying combined with deferred propagation; even
    push-down allocates copies so that recorded versions stay immutable.

Node behavior is supplied as a small operations object (an algebra, see
package node), much like a summary monoid is threaded through a sum-tree:
Combine must be associative over adjacent ranges but need not be
commutative. Ready-made aggregators for common queries live in package agg.

All engines are single-threaded and synchronous; an engine instance must not
be shared between goroutines without external synchronization.

Complexity: build is O(n log n); update, query and LowerBound are O(log n),
assuming the algebra operations are O(1).

Out-of-range indices and versions are programmer errors and panic; empty
query ranges are not errors and report an absent result.

# BSD License

Copyright (c) the seg-tree authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
