package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaskText(t *testing.T) {
	assert.Equal(t, "run 5k", NormalizeTaskText("Run 5k"))
	assert.Equal(t, "run 5k", NormalizeTaskText("  run   5K "))
	assert.Equal(t, "", NormalizeTaskText("   "))
}

func TestTaskKeyMatching(t *testing.T) {
	tasks := []*Task{
		{Text: "Run 5k", Status: StatusOpen},
		{Text: "Write report", Status: StatusOpen},
	}

	found := FindTask(tasks, NormalizeTaskText("run  5K"))
	assert.NotNil(t, found)
	assert.Equal(t, "Run 5k", found.Text)

	assert.Nil(t, FindTask(tasks, "run 10k"))
}

func TestTaskUpdate(t *testing.T) {
	base := &Task{Text: "Run 5k", Status: StatusOpen}
	base.Update(&Task{Text: "run 5k", Status: StatusDone, Comment: "nice"})

	assert.Equal(t, StatusDone, base.Status)
	assert.Equal(t, "nice", base.Comment)
	assert.Equal(t, "Run 5k", base.Text, "text is identity and must not change")
}

func TestTaskStatus(t *testing.T) {
	assert.True(t, StatusDone.Completed())
	assert.False(t, StatusPartial.Completed())
	assert.False(t, StatusOpen.Completed())

	assert.True(t, StatusDone.Started())
	assert.True(t, StatusPartial.Started())
	assert.False(t, StatusOpen.Started())
}
