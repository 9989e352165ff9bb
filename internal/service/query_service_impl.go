package service

import "github.com/maebert/bragmaster/internal/domain"

type queryService struct{}

func NewQueryService() QueryService {
	return &queryService{}
}

func (q *queryService) Users(doc *domain.Document, filter domain.UserFilter) []*domain.User {
	var out []*domain.User
	for _, u := range doc.Users {
		if filter.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}

func (q *queryService) CurrentSessions(doc *domain.Document, filter domain.UserFilter) *domain.Document {
	return pickSessions(doc, filter, (*domain.User).CurrentSession)
}

func (q *queryService) LastSessions(doc *domain.Document, filter domain.UserFilter) *domain.Document {
	return pickSessions(doc, filter, (*domain.User).LastSession)
}

// pickSessions builds a sub-document holding one selected session per
// matching user. Users without a selectable session are skipped, which
// makes unknown filter names non-fatal: they simply produce no output.
func pickSessions(doc *domain.Document, filter domain.UserFilter, sel func(*domain.User) *domain.Session) *domain.Document {
	out := &domain.Document{}
	for _, u := range doc.Users {
		if !filter.Matches(u) {
			continue
		}
		s := sel(u)
		if s == nil {
			continue
		}
		out.AddUser(&domain.User{
			Name:     u.Name,
			Email:    u.Email,
			Active:   u.Active,
			Sessions: []*domain.Session{s.Clone()},
		})
	}
	return out
}
