// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root    = "/"
	Healthz = "/healthz"

	Goals               = "/goals"
	GoalsPrefix         = "/goals/"
	GoalFavoritePattern = GoalsPrefix + "{goalID}/favorite"

	Tasks               = "/tasks"
	TasksPrefix         = "/tasks/"
	TasksReroll         = "/tasks/reroll"
	TaskCompletePattern = TasksPrefix + "{slot}/complete"
	TaskResetPattern    = TasksPrefix + "{slot}/reset"

	SettingsPrefix   = "/settings/"
	SettingsTheme    = "/settings/theme"
	SettingsLanguage = "/settings/language"

	APIPrefix = "/api/"
	APIGoals  = "/api/goals"
	APIDaily  = "/api/daily"

	MCP       = "/mcp"
	MCPPrefix = "/mcp/"

	StaticPrefix = "/static/"
	Stylesheet   = "/static/app.css"
)

// FilterFavorites is the goals tab query value for the favorites view.
const FilterFavorites = "favorites"

// GoalsFavorites returns the favorites view of the goals tab.
func GoalsFavorites() string {
	return Goals + "?filter=" + FilterFavorites
}

// GoalFavorite returns the toggle-favorite path for a goal.
func GoalFavorite(goalID string) string {
	return GoalsPrefix + url.PathEscape(goalID) + "/favorite"
}

// TaskComplete returns the completion path for a daily slot.
func TaskComplete(slot int) string {
	return TasksPrefix + strconv.Itoa(slot) + "/complete"
}

// TaskReset returns the reset path for a daily slot.
func TaskReset(slot int) string {
	return TasksPrefix + strconv.Itoa(slot) + "/reset"
}
