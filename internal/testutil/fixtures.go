package testutil

import "github.com/maebert/bragmaster/internal/domain"

// User options
type UserOption func(*domain.User)

func WithEmail(email string) UserOption {
	return func(u *domain.User) {
		u.Email = email
	}
}

func WithInactive() UserOption {
	return func(u *domain.User) {
		u.Active = false
	}
}

func WithGoals(tasks ...*domain.Task) UserOption {
	return func(u *domain.User) {
		u.Goals = append(u.Goals, tasks...)
	}
}

func WithSession(label string, tasks ...*domain.Task) UserOption {
	return func(u *domain.User) {
		u.Sessions = append(u.Sessions, &domain.Session{Label: label, Tasks: tasks})
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	u := &domain.User{Name: name, Active: true}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func NewTestDocument(users ...*domain.User) *domain.Document {
	return &domain.Document{Users: users}
}

// Task shorthands

func OpenTask(text string) *domain.Task {
	return &domain.Task{Text: text, Status: domain.StatusOpen}
}

func PartialTask(text string) *domain.Task {
	return &domain.Task{Text: text, Status: domain.StatusPartial}
}

func DoneTask(text, comment string) *domain.Task {
	return &domain.Task{Text: text, Status: domain.StatusDone, Comment: comment}
}
