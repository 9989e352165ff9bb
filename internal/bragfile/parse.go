package bragfile

import (
	"strings"

	"github.com/maebert/bragmaster/internal/domain"
)

// Parse builds a Document from raw bragfile text.
//
// The builder keeps a current-user and current-task-list cursor. Task
// lines before any "## " heading under a user are dropped, as are task
// lines before the first user heading. Duplicate user headings resume
// the existing user and duplicate session labels coalesce into the
// first occurrence, so accidental double headers never lose tasks.
//
// Parse only fails when the input has non-blank content but no user
// heading at all; empty input yields an empty Document.
func Parse(text string) (*domain.Document, error) {
	doc := &domain.Document{}

	var user *domain.User
	var tasks *[]*domain.Task
	sawContent := false

	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" && !strings.HasPrefix(trimmed, "---") {
			sawContent = true
		}

		line := Classify(raw)
		switch line.Kind {
		case KindUserHeader:
			if existing := doc.FindUser(line.Name); existing != nil {
				user = existing
				if user.Email == "" {
					user.Email = line.Email
				}
			} else {
				user = &domain.User{Name: line.Name, Email: line.Email, Active: line.Active}
				doc.AddUser(user)
			}
			tasks = nil

		case KindGoalsHeader:
			if user == nil {
				continue
			}
			tasks = &user.Goals

		case KindSessionHeader:
			if user == nil {
				continue
			}
			session := user.FindSession(line.Label)
			if session == nil {
				session = &domain.Session{Label: line.Label}
				user.Sessions = append(user.Sessions, session)
			}
			tasks = &session.Tasks

		case KindTask:
			if tasks == nil {
				continue
			}
			*tasks = append(*tasks, &domain.Task{
				Text:    line.Text,
				Status:  line.Status,
				Comment: line.Comment,
			})

		case KindBlank, KindOther:
			// Opaque content does not contribute to the model.
		}
	}

	if doc.Empty() && sawContent {
		return nil, &ParseError{Reason: "no user headings found"}
	}
	return doc, nil
}
