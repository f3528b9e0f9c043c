// Package core provides template helpers shared by every page.
package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/kampus/admin-console/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl": deps.ContentTemplateFor,
		"money":       Money,
		"count":       uiutil.FormatCount,
		"datetime":    DateTime,
		"dash":        uiutil.DashIfEmpty,
		"add":         func(a, b int) int { return a + b },
		"sub":         func(a, b int) int { return a - b },
		"pct":         func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"deref":       derefInt,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - produced by our own html/template set; values were escaped during execution.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// Money formats int or float amounts in Turkish lira.
func Money(v any) string {
	switch x := v.(type) {
	case float64:
		return uiutil.FormatMoney(x)
	case float32:
		return uiutil.FormatMoney(float64(x))
	case int:
		return uiutil.FormatMoney(float64(x))
	case int64:
		return uiutil.FormatMoney(float64(x))
	default:
		return uiutil.FormatMoney(0)
	}
}

// DateTime formats time.Time or *time.Time values; anything else renders empty.
func DateTime(ts any) string {
	switch v := ts.(type) {
	case time.Time:
		return uiutil.FormatDateTime(v)
	case *time.Time:
		if v != nil {
			return uiutil.FormatDateTime(*v)
		}
	}
	return ""
}

func derefInt(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(*p)
}
