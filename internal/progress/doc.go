// Package progress owns the goal and task progression model.
//
// A Catalog holds the immutable task list and the goals they feed. A Tracker
// keeps the day's selection of tasks (the daily board), awards experience
// points to goals as tasks complete, and swaps tasks out on reset. Storage is
// reached through the GoalStore, TaskStore and DailyStore contracts so the
// same rules run against the in-memory and SQLite backends.
package progress
