// Package web serves the goals dashboard: the Goals and Tasks tabs, the
// JSON API, and the optional MCP endpoint behind one HTTP listener.
package web
