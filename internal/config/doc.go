// Package config loads and validates snapshot documents: files holding
// an ordered list of observation events (counters, gauges, histograms)
// to replay into the observer.
//
// Documents are written in YAML or JSON. JSON documents are checked
// against an embedded JSON Schema before parsing.
//
//	quantiles: [0.0, 0.5, 0.99, 1.0]
//	events:
//	  - type: counter
//	    name: server.msgs_sent
//	    value: 13
//	  - type: histogram
//	    name: connect_time
//	    values: [1334, 1934, 5330, 139389]
//	  - type: counter
//	    name: requests
//	    tags: ["method=GET"]
//	    value: 7
package config
