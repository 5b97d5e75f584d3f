// Package script runs task list commands read from a text file, one per
// line, against a session.
package script

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rogersnm/tasklist/internal/markdown"
	"github.com/rogersnm/tasklist/internal/model"
)

// Meta is the optional YAML front matter of a script.
type Meta struct {
	Title  string `yaml:"title"`
	Filter string `yaml:"filter"`
}

type Verb string

const (
	VerbAdd            Verb = "add"
	VerbToggle         Verb = "toggle"
	VerbDelete         Verb = "delete"
	VerbEdit           Verb = "edit"
	VerbSave           Verb = "save"
	VerbCancel         Verb = "cancel"
	VerbClearCompleted Verb = "clear-completed"
	VerbClearAll       Verb = "clear-all"
	VerbFilter         Verb = "filter"
	VerbShow           Verb = "show"
)

type argKind int

const (
	argNone argKind = iota
	argText
	argID
	argFilter
)

var verbs = map[Verb]argKind{
	VerbAdd:            argText,
	VerbToggle:         argID,
	VerbDelete:         argID,
	VerbEdit:           argID,
	VerbSave:           argText,
	VerbCancel:         argNone,
	VerbClearCompleted: argNone,
	VerbClearAll:       argNone,
	VerbFilter:         argFilter,
	VerbShow:           argNone,
}

// Step is one parsed script line.
type Step struct {
	Line int
	Verb Verb
	Arg  string
}

func (s Step) String() string {
	if s.Arg == "" {
		return string(s.Verb)
	}
	return string(s.Verb) + " " + s.Arg
}

// Script is a parsed script file.
type Script struct {
	Meta  Meta
	Steps []Step
}

// Parse reads a script. Text arguments are kept verbatim (after the single
// separating space) so that "add" and "save" see exactly what was written;
// empty-text validation happens when the step runs.
func Parse(r io.Reader) (*Script, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	meta, body, err := markdown.Parse[Meta](bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if meta.Filter != "" {
		if _, err := model.ParseFilter(meta.Filter); err != nil {
			return nil, fmt.Errorf("front matter: %w", err)
		}
	}

	sc := &Script{Meta: meta}
	offset := linesBefore(string(raw), body)
	scanner := bufio.NewScanner(strings.NewReader(body))
	line := offset
	for scanner.Scan() {
		line++
		step, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		step.Line = line
		sc.Steps = append(sc.Steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return sc, nil
}

func parseLine(raw string) (Step, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || isComment(trimmed) {
		return Step{}, false, nil
	}
	word, rest := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		word, rest = trimmed[:i], strings.TrimLeftFunc(trimmed[i:], unicode.IsSpace)
	}
	verb := Verb(strings.ToLower(word))
	kind, known := verbs[verb]
	if !known {
		return Step{}, false, fmt.Errorf("unknown command %q", word)
	}

	switch kind {
	case argNone:
		if strings.TrimSpace(rest) != "" {
			return Step{}, false, fmt.Errorf("%s takes no argument", verb)
		}
		rest = ""
	case argID, argFilter:
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return Step{}, false, fmt.Errorf("%s needs an argument", verb)
		}
	}
	return Step{Verb: verb, Arg: rest}, true, nil
}

// isComment matches "#" alone or followed by a space.
func isComment(line string) bool {
	return line == "#" || strings.HasPrefix(line, "# ")
}

// linesBefore counts the lines preceding body in full, so reported line
// numbers match the file even when it starts with front matter.
func linesBefore(full, body string) int {
	end := len(strings.TrimRightFunc(full, unicode.IsSpace))
	start := end - len(body)
	if body == "" || start < 0 {
		return 0
	}
	return strings.Count(full[:start], "\n")
}
