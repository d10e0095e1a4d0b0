// Package timeline turns raw producer timing events into page-bounded,
// ordered and clipped intervals ready for a Gantt-style chart.
//
// A Dataset is built once per load by joining a producer-name table with one
// or more event tables. A Session owns the active Dataset together with the
// producer draw order and the page state, and answers View requests for the
// current page. Stored events are never mutated; clipping happens on copies.
//
// Session is not safe for concurrent use. Callers that load data in the
// background must hand the finished Dataset back to the goroutine that owns
// the Session and call Load there.
package timeline
