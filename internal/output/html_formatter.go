package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/outcome-sim/internal/domain"
)

// HTMLFormatter produces a standalone HTML page with a histogram chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/histogram.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"stat":  FormatStat,
	"level": FormatLevel,
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer

	hist := result.Histogram
	labels := make([]string, hist.Bins())
	for i := range labels {
		labels[i] = FormatStat((hist.Edges[i] + hist.Edges[i+1]) / 2)
	}
	yLabel := "Count"
	if hist.Density {
		yLabel = "Probability Density"
	}

	data := struct {
		*domain.SimulationResult
		Labels  []string
		Heights []float64
		YLabel  string
	}{result, labels, hist.Heights(), yLabel}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
