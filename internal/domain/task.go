// Package domain contains core business entities and interfaces.
package domain

// Task is one todo item: a stable id, a description, and a completion flag.
// IDs are unique within a list for its lifetime and are never reused after
// deletion.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
