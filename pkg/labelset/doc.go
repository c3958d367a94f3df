// Package labelset provides serialization types for rendered labels.
//
// This package defines the canonical wire format for texlabel's output, used
// for JSON files, preview-server responses, and cross-tool interoperability.
//
// # Core Types
//
//   - [Rendered]: one compiled label (tex, units, path, display form)
//   - [Set]: an ordered collection of rendered labels
//
// # Serialization
//
// Sets use a simple JSON format:
//
//	{
//	  "labels": [
//	    {"name": "vx", "tex": "{v}_{{X};{p}}", "units": "\\mathrm{km \\; s^{-1}}", ...}
//	  ]
//	}
//
// Common operations:
//
//	s, _ := labelset.ReadFile("labels.json")   // File → Set
//	labelset.WriteFile(s, "labels.json")       // Set → File
//	data, _ := labelset.Marshal(s)             // Set → []byte
//
// Output is deterministic: Write and Marshal sort labels by name, then path.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package labelset
