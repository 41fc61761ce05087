package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter renders the markdown report through goldmark into a styled HTML page
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := markdown.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Title          string
		IncumbentColor string
		ReferenceColor string
		Body           template.HTML
	}{
		Title:          report.Title(),
		IncumbentColor: colorOr(report.Incumbent.PrimaryColor, "#6b7280"),
		ReferenceColor: colorOr(report.Reference.PrimaryColor, "#2bd25b"),
		Body:           template.HTML(body.String()),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}
