// SPDX-License-Identifier: MIT

// Package render hands a finished Graph to external 3D viewers.
//
// Drawing stays outside this module. The writers below only expose the
// vertex points and the edge set in formats any viewer can load:
//
//   - WriteOBJ: Wavefront OBJ, one "v x y z" per vertex and one "l i j"
//     polyline per edge (1-based indices).
//   - WriteJSON: {"vertices": [[x,y,z], ...], "edges": [[u,v], ...]}.
//
// Both are deterministic: vertices in index order, edges sorted by (U,V).
package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphworld/core"
)

// Format names accepted by Write.
const (
	FormatOBJ  = "obj"
	FormatJSON = "json"
)

// Scene is the JSON form of a Graph.
type Scene struct {
	Vertices [][3]float64 `json:"vertices"`
	Edges    [][2]int     `json:"edges"`
}

// NewScene snapshots g's vertices and edges.
func NewScene(g *core.Graph) Scene {
	pts := g.Vertices()
	edges := g.Edges()
	s := Scene{
		Vertices: make([][3]float64, len(pts)),
		Edges:    make([][2]int, len(edges)),
	}
	for i, p := range pts {
		s.Vertices[i] = [3]float64{p.X, p.Y, p.Z}
	}
	for i, e := range edges {
		s.Edges[i] = [2]int{e.U, e.V}
	}

	return s
}

// WriteOBJ writes g as a Wavefront OBJ line model.
func WriteOBJ(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# graphworld: %d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())
	for _, p := range g.Vertices() {
		fmt.Fprintf(bw, "v %.9g %.9g %.9g\n", p.X, p.Y, p.Z)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "l %d %d\n", e.U+1, e.V+1)
	}

	return bw.Flush()
}

// WriteJSON writes g as an indented Scene document.
func WriteJSON(w io.Writer, g *core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewScene(g))
}

// Write dispatches on format (case-insensitive).
func Write(w io.Writer, g *core.Graph, format string) error {
	switch strings.ToLower(format) {
	case FormatOBJ:
		return WriteOBJ(w, g)
	case FormatJSON:
		return WriteJSON(w, g)
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
}
