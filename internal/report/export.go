package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/sandeepkv93/levelup/internal/model"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatCSV, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %s", raw)
	}
}

type Row struct {
	Position    int    `json:"position"`
	Description string `json:"text"`
	Tag         string `json:"tag"`
	Points      int    `json:"points"`
	Completed   bool   `json:"completed"`
}

type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	TotalPoints int       `json:"total_points"`
	Level       int       `json:"level"`
	Progress    float64   `json:"progress_percent"`
	NextLevelAt *int      `json:"next_level_at,omitempty"`
	Completed   int       `json:"completed"`
	Tasks       []Row     `json:"tasks"`
}

// Build snapshots the checklist. Points are derived, never read from storage.
func Build(c *model.Checklist, now time.Time) Report {
	s := c.Summary()
	r := Report{
		GeneratedAt: now.UTC(),
		TotalPoints: s.TotalPoints,
		Level:       s.Level,
		Progress:    s.Progress,
		Completed:   s.Completed,
		Tasks:       make([]Row, 0, s.Tasks),
	}
	if !s.MaxLevel {
		next := s.NextAt
		r.NextLevelAt = &next
	}
	for i, t := range c.Tasks() {
		r.Tasks = append(r.Tasks, Row{
			Position:    i + 1,
			Description: t.Description,
			Tag:         string(t.Tag),
			Points:      t.Points(),
			Completed:   t.Completed,
		})
	}
	return r
}

type Exporter struct{ now func() time.Time }

func NewExporter() *Exporter { return &Exporter{now: time.Now} }

func (e *Exporter) Export(c *model.Checklist, format Format) ([]byte, error) {
	r := Build(c, e.now())
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatCSV:
		return exportCSV(r)
	case FormatPDF:
		return exportPDF(r)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

func exportCSV(r Report) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"position", "text", "tag", "points", "completed"})
	for _, row := range r.Tasks {
		_ = w.Write([]string{
			strconv.Itoa(row.Position),
			row.Description,
			row.Tag,
			strconv.Itoa(row.Points),
			strconv.FormatBool(row.Completed),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func exportPDF(r Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Level Up Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Level Up Progress Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated: "+r.GeneratedAt.Format(time.RFC3339))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total points: %d   Level: %d   Progress: %.0f%%", r.TotalPoints, r.Level, r.Progress))
	pdf.Ln(6)
	if r.NextLevelAt != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Next level at %d points", *r.NextLevelAt))
	} else {
		pdf.Cell(0, 6, "Max level reached")
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(12, 7, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(110, 7, "Task", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 7, "Tag", "1", 0, "L", false, 0, "")
	pdf.CellFormat(18, 7, "Points", "1", 0, "R", false, 0, "")
	pdf.CellFormat(18, 7, "Done", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, row := range r.Tasks {
		done := ""
		if row.Completed {
			done = "x"
		}
		pdf.CellFormat(12, 6, strconv.Itoa(row.Position), "1", 0, "C", false, 0, "")
		pdf.CellFormat(110, 6, tr(row.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 6, tr(row.Tag), "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, strconv.Itoa(row.Points), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, done, "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
