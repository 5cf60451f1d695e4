package progress

import "strings"

// XPPerLevel is the experience needed per goal level.
const XPPerLevel = 100

// Goal is a long-term objective that accumulates experience points.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Favorite    bool   `json:"favorite"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
}

// Task is a discrete action tied to a goal and worth a fixed XP reward.
type Task struct {
	ID     string `json:"id"`
	GoalID string `json:"goal_id"`
	Title  string `json:"title"`
	XP     int    `json:"xp"`
}

// RequiredXP returns the experience threshold for level.
//
// The threshold is linear and there is no level-up: XP past it just keeps
// accumulating.
func RequiredXP(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevel
}

// RequiredXP returns the goal's threshold at its current level.
func (g Goal) RequiredXP() int {
	return RequiredXP(g.Level)
}

// Progress reports XP toward the current threshold clamped to [0, 1].
func (g Goal) Progress() float64 {
	required := g.RequiredXP()
	if g.XP <= 0 || required <= 0 {
		return 0
	}
	ratio := float64(g.XP) / float64(required)
	if ratio > 1 {
		return 1
	}
	return ratio
}

// FilterValue exposes goal fields to filter expressions.
func (g Goal) FilterValue(field string) (any, bool) {
	switch strings.TrimSpace(field) {
	case "id":
		return g.ID, true
	case "title":
		return g.Title, true
	case "favorite":
		return g.Favorite, true
	case "level":
		return int64(g.Level), true
	case "xp":
		return int64(g.XP), true
	default:
		return nil, false
	}
}
