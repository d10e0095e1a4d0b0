// Package render draws timeline pages for people: a lipgloss Gantt for the
// terminal, a standalone HTML page and an XLSX workbook.
//
// Every renderer consumes timeline.PageView values and never touches the
// session, so pages can be rendered from any goroutine once computed.
package render
