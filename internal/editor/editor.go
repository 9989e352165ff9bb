// Package editor is the glue between the pure template/merge
// operations and an external text editor. It has no opinion about
// which editor: $EDITOR decides, vim is the fallback.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// Edit writes text to a temp file, opens the user's editor on it with
// inherited stdio, waits for the editor to exit, and returns the
// edited contents. The temp file is removed afterwards.
func Edit(text string) (string, error) {
	name := filepath.Join(os.TempDir(), fmt.Sprintf("brag-%s.md", uuid.New().String()))
	if err := os.WriteFile(name, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("writing template to %s: %w", name, err)
	}
	defer os.Remove(name)

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	cmd := exec.Command(editor, name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running editor %s: %w", editor, err)
	}

	edited, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading edited template %s: %w", name, err)
	}
	return string(edited), nil
}
