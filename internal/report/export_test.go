package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/levelup/internal/model"
)

func sampleChecklist(t *testing.T) *model.Checklist {
	t.Helper()
	c := model.NewChecklist()
	read, _ := c.Add("Read 10 pages", model.TagStudy)
	c.Add("Morning run", model.TagExercise)
	_, err := c.Toggle(read.ID)
	require.NoError(t, err)
	return c
}

func fixedExporter() *Exporter {
	return &Exporter{now: func() time.Time { return time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC) }}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestBuildDerivesSummary(t *testing.T) {
	r := Build(sampleChecklist(t), time.Now())
	assert.Equal(t, 10, r.TotalPoints)
	assert.Equal(t, 1, r.Level)
	assert.InDelta(t, 20.0, r.Progress, 1e-9)
	assert.Equal(t, 1, r.Completed)
	require.NotNil(t, r.NextLevelAt)
	assert.Equal(t, 50, *r.NextLevelAt)
	require.Len(t, r.Tasks, 2)
	assert.Equal(t, Row{Position: 2, Description: "Morning run", Tag: "exercise", Points: 15}, r.Tasks[1])
}

func TestExportJSON(t *testing.T) {
	out, err := fixedExporter().Export(sampleChecklist(t), FormatJSON)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 10, decoded.TotalPoints)
	assert.Len(t, decoded.Tasks, 2)
	assert.True(t, decoded.Tasks[0].Completed)
	assert.Equal(t, 2026, decoded.GeneratedAt.Year())
}

func TestExportCSV(t *testing.T) {
	out, err := fixedExporter().Export(sampleChecklist(t), FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"position", "text", "tag", "points", "completed"}, records[0])
	assert.Equal(t, []string{"1", "Read 10 pages", "study", "10", "true"}, records[1])
}

func TestExportPDF(t *testing.T) {
	out, err := fixedExporter().Export(sampleChecklist(t), FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "expected a PDF header")
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := fixedExporter().Export(sampleChecklist(t), Format("xml"))
	assert.Error(t, err)
}
