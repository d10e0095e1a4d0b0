// Package source reads producer names and timing events from local SQLite
// databases written by the runtime's logging plugins.
//
// Every database is opened read-only and released before the call returns,
// on both success and failure. A source that lacks its table or columns, or
// cannot be read at all, fails the whole load with a
// *timeline.MalformedSourceError; no partial dataset is ever returned.
package source
