package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func editorCmd() string {
	if e := strings.TrimSpace(os.Getenv("EDITOR")); e != "" {
		return e
	}
	if e := strings.TrimSpace(os.Getenv("VISUAL")); e != "" {
		return e
	}
	return "vi"
}

// Command builds the editor invocation for path. The caller wires up stdio;
// Bubble Tea's ExecProcess does so while it releases the terminal.
func Command(path string) *exec.Cmd {
	fields := strings.Fields(editorCmd())
	args := append(fields[1:], path)
	return exec.Command(fields[0], args...)
}

// Draft is a temporary file holding one task's text while an external
// editor has it open.
type Draft struct {
	Path string
}

func NewDraft(text string) (*Draft, error) {
	f, err := os.CreateTemp("", "tasklist-*.txt")
	if err != nil {
		return nil, fmt.Errorf("creating draft: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(text + "\n"); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("writing draft: %w", err)
	}
	return &Draft{Path: f.Name()}, nil
}

// Read returns the edited text with line breaks folded into spaces, since
// a task is a single line.
func (d *Draft) Read() (string, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return "", fmt.Errorf("reading draft: %w", err)
	}
	return strings.Join(strings.Fields(string(data)), " "), nil
}

func (d *Draft) Remove() error {
	if err := os.Remove(d.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing draft: %w", err)
	}
	return nil
}
