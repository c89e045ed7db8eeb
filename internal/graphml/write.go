// Package graphml reads and writes the GraphML-family exchange format
// spec.md §6 specifies for trees and looptrees, ported from
// _examples/original_source/src/graph/graphstructure.h::print_graphml
// (writer) and src/io/graphmlparse.h (reader).
package graphml

import (
	"bufio"
	"fmt"
	"io"

	"github.com/benediktstufler/grant/internal/graph"
)

// Write emits g in the same minimal GraphML dialect print_graphml does:
// one <graphml><graph edgedefault='undirected'> element, a <node> per
// vertex, then one <edge> per undirected pair — written only when
// source's id is smaller than target's, so each edge appears exactly
// once even though the graph stores both adjacency directions.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "<graphml>")
	fmt.Fprintln(bw, "  <graph id=\"randomgraph\" edgedefault=\"undirected\">")

	for i := range g.Vertices {
		fmt.Fprintf(bw, "    <node id=\"%d\" />\n", i)
	}

	for i, v := range g.Vertices {
		for _, nb := range v.Neighbors {
			if nb > i {
				fmt.Fprintf(bw, "    <edge source=\"%d\" target=\"%d\" />\n", i, nb)
			}
		}
	}

	fmt.Fprintln(bw, "  </graph>")
	fmt.Fprintln(bw, "</graphml>")

	return bw.Flush()
}
