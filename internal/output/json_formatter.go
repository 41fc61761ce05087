package output

import "encoding/json"

// JSONFormatter renders the report as JSON; non-finite numbers become null
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	view := NewReportView(report)
	if j.Pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
