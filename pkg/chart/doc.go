// Package chart defines the JSON document format for org charts and the
// conversion to and from the engine's shape types.
//
// # Overview
//
// A chart document is what the CLI reads from disk, the HTTP API accepts
// and returns, and the store persists. The format is designed for:
//
//   - Hand-authoring: every field except shape type is optional, with
//     sensible defaults filled in on load
//   - Round-trip preservation: load, lay out, save, and re-load without
//     losing information
//   - Storage: the same struct carries bson tags for MongoDB persistence
//
// # JSON Format
//
// A document has a canvas, layout params, and a flat shape array:
//
//	{
//	  "version": 1,
//	  "name": "Engineering",
//	  "canvas": {"width": 800, "height": 600},
//	  "params": {"level_height": 40, "shape_gap": 20, "vertical_indent": 20},
//	  "shapes": [
//	    {"type": "rectangle", "id": "ceo", "text": "CEO"},
//	    {"type": "rectangle", "id": "vp", "text": "VP Engineering"},
//	    {"type": "elbow_connector", "id": "c1",
//	     "start": {"box_id": "ceo", "side": "bottom"},
//	     "end": {"box_id": "vp", "side": "top"}}
//	  ]
//	}
//
// # Shape Types
//
// The "type" field selects one of five kinds:
//
//   - rectangle, ellipse: hierarchy boxes; carry text, child_layout,
//     and a layout-owned level
//   - triangle: a decorative marker, ignored by layout
//   - text: a free-standing label with an optional font_size
//   - elbow_connector: an orthogonal connector with optional start/end
//     bindings and per-end arrowheads ("none", "arrow", "bar")
//
// Shape order in the array is the z-order; layout and connector
// resolution both preserve it.
//
// # Validation
//
// [Unmarshal] and [Read] run [Chart.ValidateAndSetDefaults], which fills
// zero-valued sizes and params, mints UUIDs for shapes without IDs, and
// rejects unknown shape types, unknown enum strings, and duplicate IDs.
// Connector bindings that reference missing boxes are allowed here; the
// engine treats them as unbound.
package chart
