// Package graphfile reads graph definitions from YAML and builds core graphs.
//
// Schema:
//
//	name: reference          # optional
//	vertices: [v1, v2, v3]   # unique, non-empty labels, insertion order kept
//	edges:
//	  - {from: v1, to: v2, weight: 7}
//
// Every edge endpoint must be declared under vertices, mirroring the
// core.Graph rule that edges require existing endpoints. Unknown keys are
// rejected.
package graphfile
