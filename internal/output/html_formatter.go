package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter converts the markdown report to a standalone HTML page
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func (h HTMLFormatter) Format(results *domain.ScenarioResults) ([]byte, error) {
	source, err := MarkdownFormatter{}.Format(results)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := markdown.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("failed to convert report markdown: %w", err)
	}

	title := "Creator Revenue Report"
	if results.CreatorName != "" {
		title = results.CreatorName + " - " + title
	}

	var buf bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
