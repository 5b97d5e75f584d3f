package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rogersnm/tasklist/internal/id"
	"github.com/rogersnm/tasklist/internal/markdown"
	"github.com/rogersnm/tasklist/internal/model"
	"github.com/rogersnm/tasklist/internal/view"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

// Formats lists every format Export accepts.
var Formats = []string{FormatJSON, FormatCSV, FormatYAML, FormatMarkdown, FormatPDF}

// Binary reports whether format produces bytes unfit for a terminal.
func Binary(format string) bool {
	return strings.EqualFold(format, FormatPDF)
}

type Exporter struct {
	Title string
}

func NewExporter(title string) *Exporter {
	if title == "" {
		title = "Tasks"
	}
	return &Exporter{Title: title}
}

func (e *Exporter) Export(v view.View, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	case FormatCSV:
		return e.csv(v)
	case FormatMarkdown:
		return e.markdown(v)
	case FormatPDF:
		return e.pdf(v)
	default:
		return nil, fmt.Errorf("unknown format %q: must be one of %s", format, strings.Join(Formats, ", "))
	}
}

func (e *Exporter) csv(v view.View) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "text", "completed", "created_at"}); err != nil {
		return nil, err
	}
	for _, r := range v.Rows {
		rec := []string{fmt.Sprint(r.ID), r.Text, fmt.Sprint(r.Completed), r.CreatedAt.UTC().Format(time.RFC3339)}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding csv: %w", err)
	}
	return buf.Bytes(), nil
}

type markdownMeta struct {
	Title  string       `yaml:"title"`
	Filter model.Filter `yaml:"filter"`
	Counts model.Counts `yaml:"counts"`
}

func (e *Exporter) markdown(v view.View) ([]byte, error) {
	body := markdown.Checklist(v.Tasks())
	if body == "" {
		body = "_" + v.EmptyTitle() + "_"
	}
	return markdown.Marshal(markdownMeta{Title: e.Title, Filter: v.Filter, Counts: v.Counts}, body)
}

// newPDF returns an A4 document and a translator from UTF-8 to the
// cp1252 encoding of its core fonts.
func newPDF() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func (e *Exporter) pdf(v view.View) ([]byte, error) {
	pdf, tr := newPDF()
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(e.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Filter: %s   Total: %d   Completed: %d   Pending: %d",
		v.Filter, v.Counts.Total, v.Counts.Completed, v.Counts.Pending))
	pdf.Ln(10)

	if len(v.Rows) == 0 {
		pdf.MultiCell(0, 6, v.EmptyTitle(), "0", "L", false)
	}
	for _, r := range v.Rows {
		box := "[ ]"
		if r.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", box, id.Format(r.ID), r.Text)
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}
