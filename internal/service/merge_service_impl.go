package service

import "github.com/maebert/bragmaster/internal/domain"

type mergeService struct{}

func NewMergeService() MergeService {
	return &mergeService{}
}

// Merge reconciles incoming against base and returns the merged copy.
// Unknown users and session labels are appended whole; known sessions
// and goals merge task-by-task on normalized text, updating status and
// comment on a match and appending otherwise. Merging is additive and
// updating, never subtractive, and idempotent: applying the same
// incoming document twice yields the same result as applying it once.
func (m *mergeService) Merge(base, incoming *domain.Document) *domain.Document {
	merged := base.Clone()

	for _, in := range incoming.Users {
		target := merged.FindUser(in.Name)
		if target == nil {
			merged.AddUser(in.Clone())
			continue
		}

		if in.Email != "" {
			target.Email = in.Email
		}

		mergeTasks(&target.Goals, in.Goals)

		for _, s := range in.Sessions {
			existing := target.FindSession(s.Label)
			if existing == nil {
				target.Sessions = append(target.Sessions, s.Clone())
				continue
			}
			mergeTasks(&existing.Tasks, s.Tasks)
		}
	}

	return merged
}

func mergeTasks(base *[]*domain.Task, incoming []*domain.Task) {
	for _, in := range incoming {
		if existing := domain.FindTask(*base, in.Key()); existing != nil {
			existing.Update(in)
			continue
		}
		*base = append(*base, in.Clone())
	}
}
