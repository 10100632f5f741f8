package fizzbuzz

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fizzbuzz/handler"
)

// Views renders the form. Replace any of them to restyle the page; the
// element ids returned by FieldErrorsID and OutputID must be kept for patches.
type Views struct {
	Page        func(PageParams) templ.Component
	FieldErrors func(FieldErrorsParams) templ.Component
	Output      func(OutputParams) templ.Component
	Toast       func(handler.ErrorToastParams) templ.Component
	ErrorPage   func(handler.ErrorPageParams) templ.Component
}

// PageParams feeds the full page.
type PageParams struct {
	Lang   string
	Title  string
	Submit string
	Fields []FieldParams
	Output OutputParams
}

// FieldParams describes one numeric input.
type FieldParams struct {
	Name     string // model field name, e.g. FizzValue
	Signal   string // DataStar signal, e.g. fizz
	Label    string
	Value    int
	Messages []string
}

// FieldErrorsParams feeds the message list under one input.
type FieldErrorsParams struct {
	Field    string
	Messages []string
}

// OutputParams feeds the sequence block.
type OutputParams struct {
	Title   string
	Lines   []string
	Notice  string
	Visible bool
}

// FieldErrorsID is the element id of a field's message list.
func FieldErrorsID(field string) string {
	return "errors-" + field
}

// OutputID is the element id of the sequence block.
const OutputID = "output"

// DefaultViews returns plain HTML views.
func DefaultViews() *Views {
	return &Views{
		Page:        pageView,
		FieldErrors: fieldErrorsView,
		Output:      outputView,
		Toast:       toastView,
		ErrorPage:   errorPageView,
	}
}

func component(fn func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return fn(w)
	})
}

var esc = templ.EscapeString

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.1/bundles/datastar.js"

func pageView(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals := make([]string, 0, len(p.Fields))
		for _, f := range p.Fields {
			signals = append(signals, fmt.Sprintf("%q:%d", f.Signal, f.Value))
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><title>%s</title>`, esc(p.Lang), esc(p.Title))
		fmt.Fprintf(&b, `<script type="module" src="%s"></script></head><body>`, datastarScript)
		fmt.Fprintf(&b, `<main data-signals="%s"><h1>%s</h1><div id="toasts"></div>`, esc("{"+strings.Join(signals, ",")+"}"), esc(p.Title))
		b.WriteString(`<form data-on-submit="@post('/validate')">`)
		for _, f := range p.Fields {
			fmt.Fprintf(&b, `<label for="%[1]s">%[2]s</label><input id="%[1]s" name="%[3]s" type="number" value="%[4]d" data-bind-%[3]s data-on-input__debounce.300ms="@post('/fields/%[1]s')">`,
				esc(f.Name), esc(f.Label), esc(f.Signal), f.Value)
			if err := fieldErrorsView(FieldErrorsParams{Field: f.Name, Messages: f.Messages}).Render(ctx, &b); err != nil {
				return err
			}
		}
		fmt.Fprintf(&b, `<button type="submit">%s</button></form>`, esc(p.Submit))
		if err := outputView(p.Output).Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`</main></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func fieldErrorsView(p FieldErrorsParams) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<ul id="%s" class="errors">`, esc(FieldErrorsID(p.Field)))
		for _, m := range p.Messages {
			fmt.Fprintf(&b, `<li>%s</li>`, esc(m))
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func outputView(p OutputParams) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<section id="%s">`, OutputID)
		if p.Title != "" {
			fmt.Fprintf(&b, `<h2>%s</h2>`, esc(p.Title))
		}
		if p.Visible {
			b.WriteString(`<ol>`)
			for _, line := range p.Lines {
				fmt.Fprintf(&b, `<li>%s</li>`, esc(line))
			}
			b.WriteString(`</ol>`)
		}
		if p.Notice != "" {
			fmt.Fprintf(&b, `<p class="notice">%s</p>`, esc(p.Notice))
		}
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func toastView(p handler.ErrorToastParams) templ.Component {
	return component(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast toast-%s" data-request-id="%s">%s</div>`,
			esc(p.Type), esc(p.RequestID), esc(p.Message))
		return err
	})
}

func errorPageView(p handler.ErrorPageParams) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>%d</title></head><body>`, p.StatusCode)
		fmt.Fprintf(&b, `<h1>%d</h1><p>%s</p>`, p.StatusCode, esc(p.Message))
		if p.Details != "" {
			fmt.Fprintf(&b, `<pre>%s</pre>`, esc(p.Details))
		}
		if p.RequestID != "" {
			fmt.Fprintf(&b, `<small>%s</small>`, esc(p.RequestID))
		}
		b.WriteString(`</body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
