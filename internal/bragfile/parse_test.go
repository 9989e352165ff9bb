package bragfile

import (
	"testing"

	"github.com/maebert/bragmaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `# Manuel Ebert <manuel@1450.me>

## Goals

- [ ] Learn Go
- [X] Run a marathon -- took 5 hours

## 2016-02-15

- [X] Draft proposal
- [ ] Review PRs

## 2016-02-22

- [ ] Ship v0.1
- [O] Write docs

------------------------------------------------------------

# Stan (inactive)

## 2016-02-15

- [ ] Feed the fish
`

func TestParseFullDocument(t *testing.T) {
	doc, err := Parse(sampleFile)
	require.NoError(t, err)
	require.Len(t, doc.Users, 2)

	manuel := doc.Users[0]
	assert.Equal(t, "Manuel Ebert", manuel.Name)
	assert.Equal(t, "manuel@1450.me", manuel.Email)
	assert.True(t, manuel.Active)

	require.Len(t, manuel.Goals, 2)
	assert.Equal(t, "Learn Go", manuel.Goals[0].Text)
	assert.Equal(t, domain.StatusDone, manuel.Goals[1].Status)
	assert.Equal(t, "took 5 hours", manuel.Goals[1].Comment)

	require.Len(t, manuel.Sessions, 2)
	assert.Equal(t, "2016-02-15", manuel.Sessions[0].Label)
	assert.Equal(t, "2016-02-22", manuel.CurrentSession().Label)
	require.Len(t, manuel.CurrentSession().Tasks, 2)
	assert.Equal(t, domain.StatusPartial, manuel.CurrentSession().Tasks[1].Status)

	stan := doc.Users[1]
	assert.Equal(t, "Stan", stan.Name)
	assert.False(t, stan.Active)
	assert.Empty(t, stan.Goals)
	require.Len(t, stan.Sessions, 1)
}

func TestParseDropsTasksBeforeFirstHeading(t *testing.T) {
	doc, err := Parse(`# Manuel

- [ ] floating task

## 2016-02-22

- [ ] real task
`)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	require.Len(t, doc.Users[0].Sessions, 1)
	require.Len(t, doc.Users[0].Sessions[0].Tasks, 1)
	assert.Equal(t, "real task", doc.Users[0].Sessions[0].Tasks[0].Text)
}

func TestParseDropsTasksBeforeFirstUser(t *testing.T) {
	doc, err := Parse(`- [ ] orphan

# Manuel

## 2016-02-22
`)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	assert.Empty(t, doc.Users[0].Sessions[0].Tasks)
}

func TestParseCoalescesDuplicateSessionLabels(t *testing.T) {
	doc, err := Parse(`# Manuel

## 2016-02-22

- [ ] first

## 2016-02-22

- [ ] second
`)
	require.NoError(t, err)
	u := doc.Users[0]
	require.Len(t, u.Sessions, 1, "double headers coalesce instead of duplicating the session")
	require.Len(t, u.Sessions[0].Tasks, 2)
	assert.Equal(t, "first", u.Sessions[0].Tasks[0].Text)
	assert.Equal(t, "second", u.Sessions[0].Tasks[1].Text)
}

func TestParseCoalescesDuplicateUserHeadings(t *testing.T) {
	doc, err := Parse(`# Manuel

## 2016-02-15

- [ ] a

# manuel <manuel@1450.me>

## 2016-02-22

- [ ] b
`)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	u := doc.Users[0]
	assert.Equal(t, "Manuel", u.Name, "first spelling wins")
	assert.Equal(t, "manuel@1450.me", u.Email, "later headings can fill in a missing email")
	require.Len(t, u.Sessions, 2)
}

func TestParseIgnoresMalformedLines(t *testing.T) {
	doc, err := Parse(`# Manuel

## 2016-02-22

- [ ] good
- [?] broken checkbox
- not a task
random prose
- [X] also good
`)
	require.NoError(t, err)
	tasks := doc.Users[0].Sessions[0].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "good", tasks[0].Text)
	assert.Equal(t, "also good", tasks[1].Text)
}

func TestParseEmptyInput(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)
	assert.True(t, doc.Empty())

	doc, err = Parse("\n\n   \n")
	require.NoError(t, err)
	assert.True(t, doc.Empty())
}

func TestParseUnrecognizedInput(t *testing.T) {
	_, err := Parse("this is not a bragfile\nat all\n")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "no user headings")
}

func TestParseGoalsHeadingIsExactMatch(t *testing.T) {
	doc, err := Parse(`# Manuel

## 2024 goals review

- [ ] reflect
`)
	require.NoError(t, err)
	u := doc.Users[0]
	assert.Empty(t, u.Goals)
	require.Len(t, u.Sessions, 1)
	assert.Equal(t, "2024 goals review", u.Sessions[0].Label)
}
