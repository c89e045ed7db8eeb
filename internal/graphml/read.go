package graphml

import (
	"encoding/xml"
	"io"

	"github.com/benediktstufler/grant/internal/graph"
)

// ReadResult is the outcome of parsing a GraphML document: the
// constructed graph plus the string-id-to-integer-id map the document's
// <node id="..."> attributes were hashed into (so the --vertex option
// can resolve a string root id to a vertex index), mirroring
// strtograph.h's hashtable-backed lookup collapsed to a plain Go map.
type ReadResult struct {
	Graph          *graph.Graph
	IDs            map[string]int
	MultipleGraphs bool
}

type edgeRef struct {
	source, target string
}

// Read parses a GraphML document per the same subset of the spec
// graphmlparse.h implements: only the first top-level <graph> element's
// direct <node>/<edge> children are honored, <port>/<hyperedge>/
// <endpoint>/<locator> elements are silently ignored, and a second or
// nested <graph> sets MultipleGraphs so the caller can warn (this parser
// never takes the union of multiple graphs, matching the source's
// "process only the first" choice).
//
// Edges are always realized as undirected in the resulting graph: every
// caller of this package expects to receive a tree or a looptree, both
// inherently undirected once built, so a GraphML edge's own
// directed="true"/"false" attribute is accepted for document fidelity
// but does not change how the edge is wired into internal/graph.Graph.
func Read(r io.Reader) (*ReadResult, error) {
	dec := xml.NewDecoder(r)

	depth := 0
	numGraph := 0
	multiple := false

	ids := make(map[string]int)
	order := make([]string, 0)
	getID := func(s string) int {
		if id, ok := ids[s]; ok {
			return id
		}
		id := len(order)
		ids[s] = id
		order = append(order, s)
		return id
	}

	var edges []edgeRef

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local

			if depth == 2 && numGraph == 1 {
				switch name {
				case "edge":
					var source, target string
					for _, a := range t.Attr {
						switch a.Name.Local {
						case "source":
							source = a.Value
						case "target":
							target = a.Value
						}
					}
					if source != "" && target != "" {
						getID(source)
						getID(target)
						edges = append(edges, edgeRef{source, target})
					}
				case "node":
					for _, a := range t.Attr {
						if a.Name.Local == "id" {
							getID(a.Value)
						}
					}
				}
				// port, hyperedge, endpoint, locator: intentionally
				// ignored without warning, per the GraphML spec's own
				// guidance that graphmlparse.h quotes.
			}

			if name == "graph" {
				numGraph++
				if numGraph > 1 {
					multiple = true
				}
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	g := graph.New(len(order))
	for _, e := range edges {
		g.AddEdge(ids[e.source], ids[e.target])
	}

	return &ReadResult{Graph: g, IDs: ids, MultipleGraphs: multiple}, nil
}
