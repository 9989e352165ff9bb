package domain

import "strings"

type Task struct {
	Text    string
	Status  TaskStatus
	Comment string
}

// Key returns the normalized identity of the task. Tasks are matched
// across document versions by this key, not by position.
func (t *Task) Key() string {
	return NormalizeTaskText(t.Text)
}

// Update applies the status and comment of an incoming task revision.
func (t *Task) Update(incoming *Task) {
	t.Status = incoming.Status
	t.Comment = incoming.Comment
}

func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// NormalizeTaskText lowercases the text and collapses all runs of
// whitespace to single spaces, so "Run 5k" and " run  5k " match.
func NormalizeTaskText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// FindTask returns the task in tasks whose normalized text matches, or nil.
func FindTask(tasks []*Task, key string) *Task {
	for _, t := range tasks {
		if t.Key() == key {
			return t
		}
	}
	return nil
}
