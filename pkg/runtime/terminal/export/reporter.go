package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/itinerary-diff/pkg/models/domain"
	"github.com/de-tools/itinerary-diff/pkg/services/comparison"
	"github.com/dustin/go-humanize/english"
)

// TableConfig holds minimum column widths. Columns grow to fit their content.
type TableConfig struct {
	LabelWidth int
	ValueWidth int
	MarkDiffs  bool
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 20,
		ValueWidth: 24,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer, config TableConfig) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: config,
	}
}

type row struct {
	Label  string
	Values []string
	Mark   string
}

type table struct {
	Title   string
	Headers []string
	Rows    []row
	Widths  []int
	Marks   bool
}

type view struct {
	Tables  []table
	Summary string
}

const reportTemplate = `{{range .Tables}}
{{.Title}}
{{separator .}}
{{header .}}
{{separator .}}
{{$t := .}}{{range .Rows}}{{formatRow $t .}}
{{end}}{{separator .}}
{{end}}{{if .Summary}}
{{.Summary}}
{{end}}`

// Handle writes one table per itinerary pair followed by the surplus summary.
// Nothing is written if rendering fails.
func (c *Reporter) Handle(cmp *domain.Comparison) error {
	v := view{Tables: make([]table, 0, len(cmp.Pairs))}
	for _, pair := range cmp.Pairs {
		v.Tables = append(v.Tables, c.pairTable(pair))
	}

	if side, extra := cmp.Surplus(); side != domain.SideNone {
		verb := english.PluralWord(extra, "does", "do")
		v.Summary = fmt.Sprintf("There's also %s in %s response that %s not have pairs in %s.",
			english.Plural(extra, "itinerary", "itineraries"), side, verb, side.Other())
	}

	return c.render(v)
}

// HandleList writes one table per itinerary of a single response.
func (c *Reporter) HandleList(source string, itineraries []domain.Itinerary) error {
	v := view{Tables: make([]table, 0, len(itineraries))}
	for i, it := range itineraries {
		rows := itineraryRows(it)
		rs := make([]row, len(rows))
		for j, r := range rows {
			rs[j] = row{Label: r.label, Values: []string{r.value}}
		}
		v.Tables = append(v.Tables, c.newTable(
			fmt.Sprintf("%s: itinerary #%d", source, i+1),
			[]string{"Field", "Value"},
			rs,
			false,
		))
	}
	v.Summary = fmt.Sprintf("%s in %s.", english.Plural(len(itineraries), "itinerary", "itineraries"), source)

	return c.render(v)
}

func (c *Reporter) pairTable(pair domain.ItineraryPair) table {
	first := itineraryRows(pair.First)
	second := itineraryRows(pair.Second)

	differs := make(map[comparison.Field]bool)
	for _, f := range comparison.Differences(pair) {
		differs[f] = true
	}

	rows := make([]row, len(first))
	for i := range first {
		r := row{Label: first[i].label, Values: []string{first[i].value, second[i].value}}
		if c.config.MarkDiffs && differs[first[i].field] {
			r.Mark = "*"
		}
		rows[i] = r
	}

	title := fmt.Sprintf("Itinerary #%d", pair.Index+1)
	if c.config.MarkDiffs && comparison.Identical(pair) {
		title += " (identical)"
	}

	return c.newTable(
		title,
		[]string{"Field", "First", "Second"},
		rows,
		c.config.MarkDiffs,
	)
}

func (c *Reporter) newTable(title string, headers []string, rows []row, marks bool) table {
	widths := make([]int, len(headers))
	// fmt pads by runes, so widths are measured in runes too.
	widths[0] = max(c.config.LabelWidth, utf8.RuneCountInString(headers[0]))
	for i := 1; i < len(headers); i++ {
		widths[i] = max(c.config.ValueWidth, utf8.RuneCountInString(headers[i]))
	}
	for _, r := range rows {
		widths[0] = max(widths[0], utf8.RuneCountInString(r.Label))
		for i, v := range r.Values {
			widths[i+1] = max(widths[i+1], utf8.RuneCountInString(v))
		}
	}

	return table{Title: title, Headers: headers, Rows: rows, Widths: widths, Marks: marks}
}

func (c *Reporter) render(v view) error {
	funcMap := template.FuncMap{
		"separator": func(t table) string {
			var b strings.Builder
			b.WriteString("+")
			for _, w := range t.Widths {
				b.WriteString(strings.Repeat("-", w+2))
				b.WriteString("+")
			}
			if t.Marks {
				b.WriteString("---+")
			}
			return b.String()
		},
		"header": func(t table) string {
			return formatCells(t, t.Headers, "")
		},
		"formatRow": func(t table, r row) string {
			return formatCells(t, append([]string{r.Label}, r.Values...), r.Mark)
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	_, err = buf.WriteTo(c.writer)
	return err
}

func formatCells(t table, cells []string, mark string) string {
	var b strings.Builder
	b.WriteString("|")
	for i, w := range t.Widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(&b, " %-*s |", w, cell)
	}
	if t.Marks {
		fmt.Fprintf(&b, " %-1s |", mark)
	}
	return b.String()
}
