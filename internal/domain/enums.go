package domain

// TaskStatus is the checkbox mark of a task line.
type TaskStatus string

const (
	StatusOpen    TaskStatus = " "
	StatusPartial TaskStatus = "O"
	StatusDone    TaskStatus = "X"
)

// ValidStatusMarks maps accepted bracket characters to their canonical status.
var ValidStatusMarks = map[string]TaskStatus{
	" ": StatusOpen,
	"o": StatusPartial,
	"O": StatusPartial,
	"x": StatusDone,
	"X": StatusDone,
}

// Completed reports whether the task is fully done. Partial tasks are
// not completed and carry forward into new session templates.
func (s TaskStatus) Completed() bool {
	return s == StatusDone
}

// Started reports whether any work has been recorded against the task.
func (s TaskStatus) Started() bool {
	return s != StatusOpen
}
