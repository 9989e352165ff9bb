package service

import "github.com/maebert/bragmaster/internal/domain"

// QueryService answers read-only questions about a parsed document.
type QueryService interface {
	Users(doc *domain.Document, filter domain.UserFilter) []*domain.User
	CurrentSessions(doc *domain.Document, filter domain.UserFilter) *domain.Document
	LastSessions(doc *domain.Document, filter domain.UserFilter) *domain.Document
}

// TemplateService generates a new session stub for external editing.
type TemplateService interface {
	Generate(doc *domain.Document, label string, filter domain.UserFilter) *domain.Document
}

// MergeService reconciles an edited or piped document against the
// canonical one.
type MergeService interface {
	Merge(base, incoming *domain.Document) *domain.Document
}
