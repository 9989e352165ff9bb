package bragfile

import (
	"regexp"
	"strings"

	"github.com/maebert/bragmaster/internal/domain"
)

// LineKind tags the classification of one raw input line.
type LineKind string

const (
	KindUserHeader    LineKind = "user_header"
	KindGoalsHeader   LineKind = "goals_header"
	KindSessionHeader LineKind = "session_header"
	KindTask          LineKind = "task"
	KindBlank         LineKind = "blank"
	KindOther         LineKind = "other"
)

// Line is the classified form of one raw line with its extracted
// substructure. Only the fields for its Kind are populated.
type Line struct {
	Kind LineKind
	Raw  string

	// KindUserHeader
	Name   string
	Email  string
	Active bool

	// KindSessionHeader
	Label string

	// KindTask
	Status  domain.TaskStatus
	Text    string
	Comment string
}

var (
	userHeaderRe = regexp.MustCompile(`^# +(.*\S)`)
	emailRe      = regexp.MustCompile(`<([^<>]*)>`)
	inactiveRe   = regexp.MustCompile(`(?i)\(\s*inactive\s*\)\s*$`)
	taskRe       = regexp.MustCompile(`^\s*- \[(.)\] ?(.*)$`)
	looseMailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
)

// Classify never fails: any line that does not match the grammar
// degrades to KindOther.
func Classify(raw string) Line {
	if strings.TrimSpace(raw) == "" {
		return Line{Kind: KindBlank, Raw: raw}
	}

	if strings.HasPrefix(raw, "## ") {
		rest := strings.TrimSpace(raw[3:])
		switch {
		case rest == "":
			return Line{Kind: KindOther, Raw: raw}
		case strings.EqualFold(rest, "goals"):
			return Line{Kind: KindGoalsHeader, Raw: raw}
		default:
			return Line{Kind: KindSessionHeader, Raw: raw, Label: rest}
		}
	}

	if m := userHeaderRe.FindStringSubmatch(raw); m != nil {
		return classifyUserHeader(raw, m[1])
	}

	if m := taskRe.FindStringSubmatch(raw); m != nil {
		if status, ok := domain.ValidStatusMarks[m[1]]; ok {
			text, comment := splitComment(m[2])
			return Line{Kind: KindTask, Raw: raw, Status: status, Text: text, Comment: comment}
		}
		// Checkbox present but the bracket content is unparseable.
		return Line{Kind: KindOther, Raw: raw}
	}

	return Line{Kind: KindOther, Raw: raw}
}

func classifyUserHeader(raw, heading string) Line {
	line := Line{Kind: KindUserHeader, Raw: raw, Active: true}

	if inactiveRe.MatchString(heading) {
		line.Active = false
		heading = strings.TrimSpace(inactiveRe.ReplaceAllString(heading, ""))
	}

	if m := emailRe.FindStringSubmatch(heading); m != nil && looseMailRe.MatchString(m[1]) {
		line.Email = m[1]
		heading = strings.TrimSpace(strings.Replace(heading, m[0], "", 1))
	}

	line.Name = strings.TrimSpace(heading)
	if line.Name == "" {
		return Line{Kind: KindOther, Raw: raw}
	}
	return line
}

// splitComment splits a task body on the first standalone "--" marker.
// Em-dashes count as "--" so hand-written long dashes survive.
func splitComment(body string) (text, comment string) {
	body = strings.ReplaceAll(body, "—", "--")
	if i := strings.Index(body, "--"); i >= 0 {
		return strings.TrimSpace(body[:i]), strings.TrimSpace(body[i+2:])
	}
	return strings.TrimSpace(body), ""
}
