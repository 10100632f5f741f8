package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// PatchOption configures a DataStar element patch.
type PatchOption = datastar.PatchElementOption

// WithTarget patches the element matching selector instead of the one with
// the component's root id.
func WithTarget(selector string) PatchOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) PatchOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component of a TemplMulti response.
type TemplPatch struct {
	Component templ.Component
	Options   []PatchOption
}

func Patch(component templ.Component, opts ...PatchOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// signalsPatch updates client signals after the element patches.
type signalsPatch struct {
	signals any
}

type templResponse struct {
	status  int
	full    templ.Component
	patches []TemplPatch
	signals *signalsPatch
}

// Render sends the patches over SSE for DataStar requests and the full
// component (or the concatenated patches) as HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		if t.signals == nil {
			return nil
		}
		data, err := json.Marshal(t.signals.signals)
		if err != nil {
			return err
		}
		return sse.PatchSignals(data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders component as a page, or as a single patch for DataStar.
func Templ(component templ.Component, opts ...PatchOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplStatus is Templ with an explicit status code for non-DataStar requests.
func TemplStatus(status int, component templ.Component) Response {
	return templResponse{status: status, patches: []TemplPatch{Patch(component)}}
}

// TemplPartial renders partial for DataStar requests and full otherwise.
func TemplPartial(partial, full templ.Component, opts ...PatchOption) Response {
	return templResponse{full: full, patches: []TemplPatch{Patch(partial, opts...)}}
}

// TemplMulti sends several patches in one DataStar response.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}

// TemplMultiWithSignals is TemplMulti followed by a signals patch.
func TemplMultiWithSignals(signals any, patches ...TemplPatch) Response {
	return templResponse{patches: patches, signals: &signalsPatch{signals: signals}}
}
