package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditReturnsContentFromNoopEditor(t *testing.T) {
	t.Setenv("EDITOR", "true")

	out, err := Edit("# Manuel\n\n## 2016-02-22\n")
	require.NoError(t, err)
	assert.Equal(t, "# Manuel\n\n## 2016-02-22\n", out)
}

func TestEditSurfacesEditorFailure(t *testing.T) {
	t.Setenv("EDITOR", "false")

	_, err := Edit("anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running editor")
}
