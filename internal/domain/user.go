package domain

import "strings"

type User struct {
	Name   string
	Email  string
	Active bool

	// Goals is the user's standing, non-dated task list.
	Goals []*Task
	// Sessions are kept in file order. The most recently appended
	// session is "current", the one before it is "last".
	Sessions []*Session
}

// NameKey returns the case-insensitive identity of the user.
func (u *User) NameKey() string {
	return strings.ToLower(strings.TrimSpace(u.Name))
}

// CurrentSession returns the most recently appended session, or nil.
func (u *User) CurrentSession() *Session {
	if len(u.Sessions) == 0 {
		return nil
	}
	return u.Sessions[len(u.Sessions)-1]
}

// LastSession returns the session before the current one, or nil.
func (u *User) LastSession() *Session {
	if len(u.Sessions) < 2 {
		return nil
	}
	return u.Sessions[len(u.Sessions)-2]
}

// FindSession returns the session with the given label, or nil.
// Labels are compared exactly, after trimming.
func (u *User) FindSession(label string) *Session {
	label = strings.TrimSpace(label)
	for _, s := range u.Sessions {
		if s.Label == label {
			return s
		}
	}
	return nil
}

func (u *User) Clone() *User {
	c := &User{Name: u.Name, Email: u.Email, Active: u.Active}
	for _, g := range u.Goals {
		c.Goals = append(c.Goals, g.Clone())
	}
	for _, s := range u.Sessions {
		c.Sessions = append(c.Sessions, s.Clone())
	}
	return c
}
