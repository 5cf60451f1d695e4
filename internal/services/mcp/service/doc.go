// Package service hosts the MCP server that exposes goals and the daily
// board as tools and resources.
package service
