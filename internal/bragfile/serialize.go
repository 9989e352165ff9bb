package bragfile

import (
	"fmt"
	"strings"

	"github.com/maebert/bragmaster/internal/domain"
)

const separatorWidth = 60

// Serialize renders the document in canonical form: per user a heading
// line, an optional Goals block, then every session in order, with one
// blank line between blocks and a horizontal rule between users. The
// output is deterministic, so re-serializing an unmodified parse of it
// reproduces the same bytes.
func Serialize(doc *domain.Document) string {
	if doc.Empty() {
		return ""
	}

	blocks := make([]string, 0, len(doc.Users))
	for _, u := range doc.Users {
		blocks = append(blocks, serializeUser(u))
	}

	sep := "\n\n" + strings.Repeat("-", separatorWidth) + "\n\n"
	return strings.Join(blocks, sep) + "\n"
}

func serializeUser(u *domain.User) string {
	sections := []string{headerLine(u)}

	if len(u.Goals) > 0 {
		sections = append(sections, "## Goals\n\n"+taskBlock(u.Goals))
	}
	for _, s := range u.Sessions {
		section := "## " + s.Label
		if len(s.Tasks) > 0 {
			section += "\n\n" + taskBlock(s.Tasks)
		}
		sections = append(sections, section)
	}

	return strings.Join(sections, "\n\n")
}

func headerLine(u *domain.User) string {
	h := "# " + u.Name
	if u.Email != "" {
		h += " <" + u.Email + ">"
	}
	if !u.Active {
		h += " (inactive)"
	}
	return h
}

func taskBlock(tasks []*domain.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, TaskLine(t))
	}
	return strings.Join(lines, "\n")
}

// TaskLine renders one task in checkbox form, with its comment after
// the "--" marker when present.
func TaskLine(t *domain.Task) string {
	mark := string(t.Status)
	if mark == "" {
		mark = string(domain.StatusOpen)
	}
	line := strings.TrimRight(fmt.Sprintf("- [%s] %s", mark, t.Text), " ")
	if t.Comment != "" {
		line += " -- " + t.Comment
	}
	return line
}
