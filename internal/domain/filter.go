package domain

import "strings"

// UserFilter selects a subset of users by name. The zero value selects
// everyone. Names are matched case-insensitively.
type UserFilter struct {
	names map[string]bool
}

// NewUserFilter builds a filter from a list of names. Empty entries are
// ignored; an empty list yields the match-all filter.
func NewUserFilter(names []string) UserFilter {
	f := UserFilter{}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if f.names == nil {
			f.names = make(map[string]bool)
		}
		f.names[n] = true
	}
	return f
}

// ParseUserFilter builds a filter from a comma-separated flag value.
func ParseUserFilter(flag string) UserFilter {
	if strings.TrimSpace(flag) == "" {
		return UserFilter{}
	}
	return NewUserFilter(strings.Split(flag, ","))
}

// Empty reports whether the filter matches every user.
func (f UserFilter) Empty() bool {
	return len(f.names) == 0
}

// Matches reports whether the user passes the filter.
func (f UserFilter) Matches(u *User) bool {
	if f.Empty() {
		return true
	}
	return f.names[u.NameKey()]
}

// Names returns the filtered names that were explicitly listed.
func (f UserFilter) Names() []string {
	var out []string
	for n := range f.names {
		out = append(out, n)
	}
	return out
}
