// Package graphjson serializes task graphs to and from their JSON
// document form.
//
// The document layout is stable across revisions:
//
//	{
//	  "useNodeDurations": true,
//	  "vertexCount": 2,
//	  "edgeCount": 1,
//	  "vertices": [
//	    {"id": 0, "name": "Street Cleaning: Downtown", "duration": 5,
//	     "type": "STREET_CLEANING", "description": "..."}
//	  ],
//	  "edges": [
//	    {"from": 0, "to": 1, "weight": 2, "type": "TASK_DEPENDENCY"}
//	  ],
//	  "statistics": {...}
//	}
//
// Kind tokens round-trip through the core TextMarshaler implementations;
// unknown tokens decode to the OTHER fallback instead of failing, so
// documents written by newer revisions still load.
//
// Unmarshal is forgiving about the syntax itself: when strict decoding
// fails, the input is run through jsonrepair (single quotes, unquoted
// keys, trailing commas) and decoded again before giving up. Semantic
// problems, a missing vertices or edges array or an edge naming an
// unknown vertex, remain hard errors.
package graphjson
