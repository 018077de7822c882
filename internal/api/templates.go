package api

import (
	"encoding/json"
	"fmt"
	"html/template"
)

// TemplateFuncs are the helpers the page templates rely on: rupee display
// for paise amounts and JSON embedding for page scripts.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"rupees": func(paise int64) string {
			return fmt.Sprintf("₹%d", paise/100)
		},
		"json": func(v any) template.JS {
			b, err := json.Marshal(v)
			if err != nil {
				return "null"
			}
			return template.JS(b)
		},
	}
}
