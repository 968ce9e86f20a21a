// Package graphhcl loads task graphs from HCL configuration files.
//
// A graph file consists of one optional graph settings block, task
// blocks labelled with the vertex ID, and dependency blocks:
//
//	graph {
//	  use_node_durations = true
//	}
//
//	task "0" {
//	  name        = "Street Cleaning: Downtown"
//	  duration    = 5
//	  kind        = STREET_CLEANING
//	  description = "morning shift"
//	}
//
//	task "1" {
//	  name = "Repairs: City Center"
//	  kind = REPAIRS
//	}
//
//	dependency {
//	  from   = 0
//	  to     = 1
//	  weight = 2
//	  kind   = TASK_DEPENDENCY
//	}
//
// Kind tokens are exposed to the evaluation context as variables, so
// they can be written bare (STREET_CLEANING) or quoted; unknown quoted
// tokens fall back to the OTHER categories, matching the JSON loader.
// Tasks load before dependencies, so a dependency endpoint must name a
// declared task.
package graphhcl
