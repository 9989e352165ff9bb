package domain

type Session struct {
	// Label is the session heading as written, typically an ISO date.
	// It is an opaque key: never parsed or validated as a date.
	Label string
	Tasks []*Task
}

// Incomplete returns the tasks that have not been fully completed,
// in order. These are the tasks a new session template carries forward.
func (s *Session) Incomplete() []*Task {
	var out []*Task
	for _, t := range s.Tasks {
		if !t.Status.Completed() {
			out = append(out, t)
		}
	}
	return out
}

func (s *Session) Clone() *Session {
	c := &Session{Label: s.Label, Tasks: make([]*Task, 0, len(s.Tasks))}
	for _, t := range s.Tasks {
		c.Tasks = append(c.Tasks, t.Clone())
	}
	return c
}
