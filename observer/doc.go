// Package observer records metric observations and renders them in a
// hierarchical, text-based format.
//
// Dot-separated metric names provide the hierarchy and indentation of
// the output. For a snapshot with two metrics — server.msgs_received
// and server.msgs_sent — the rendered text is:
//
//	server:
//	  msgs_received: 42
//	  msgs_sent: 13
//
// Adding another metric, configuration_reloads, yields:
//
//	configuration_reloads: 2
//	server:
//	  msgs_received: 42
//	  msgs_sent: 13
//
// Entries at each level are sorted alphabetically. The output carries
// no top-level wrapper: callers wanting a literal "root:" header add it
// themselves.
//
// # Histograms
//
// Histograms are rendered with a configurable set of quantiles,
// formatted using human-readable labels: 0.0 is "min", 1.0 is "max",
// and anything in between uses the common "pXXX" form, so a quantile of
// 0.5 is p50 and 0.999 is p999. Every histogram also reports its sample
// count:
//
//	connect_time count: 15
//	connect_time max: 139389
//	connect_time min: 1334
//	connect_time p50: 1934
//	connect_time p99: 5330
//
// # Usage
//
//	obs := observer.NewBuilder().Build()
//	obs.ObserveCounter(observer.NewKey("server.msgs_sent"), 13)
//	obs.ObserveHistogram(observer.NewKey("connect_time"), samples)
//	fmt.Print(obs.Render())
//
// Render drains the observer: a second call without new observations
// returns the empty string.
package observer
