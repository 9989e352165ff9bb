package service

import (
	"strings"

	"github.com/maebert/bragmaster/internal/domain"
)

type templateService struct{}

func NewTemplateService() TemplateService {
	return &templateService{}
}

// Generate produces a fresh document holding, for every included user,
// their goals unchanged and one new session seeded with the incomplete
// tasks of their most recent session. Completed tasks and tasks from
// older sessions are not carried forward. A user with no prior
// sessions still gets the (empty) new session so tasks can be added.
//
// Inactive users are skipped unless the filter names them explicitly.
func (t *templateService) Generate(doc *domain.Document, label string, filter domain.UserFilter) *domain.Document {
	out := &domain.Document{}

	for _, u := range doc.Users {
		if !filter.Matches(u) {
			continue
		}
		if !u.Active && filter.Empty() {
			continue
		}

		nu := &domain.User{Name: u.Name, Email: u.Email, Active: u.Active}
		for _, g := range u.Goals {
			nu.Goals = append(nu.Goals, g.Clone())
		}

		next := &domain.Session{Label: strings.TrimSpace(label)}
		if cur := u.CurrentSession(); cur != nil {
			for _, task := range cur.Incomplete() {
				carried := task.Clone()
				// Comments describe the session they were written in
				// and would go stale if forwarded.
				carried.Comment = ""
				next.Tasks = append(next.Tasks, carried)
			}
		}
		nu.Sessions = append(nu.Sessions, next)

		out.AddUser(nu)
	}

	return out
}
