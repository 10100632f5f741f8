package fizzbuzz

import (
	"context"

	"github.com/dmitrymomot/fizzbuzz/pkg/editform"
	fb "github.com/dmitrymomot/fizzbuzz/pkg/fizzbuzz"
	"github.com/dmitrymomot/fizzbuzz/pkg/i18n"
	"github.com/dmitrymomot/fizzbuzz/pkg/logger"
)

// form is the per-request edit context with its validator attached.
type form struct {
	ec      *editform.EditContext
	v       *fb.Validator
	sub     editform.Subscription
	renders int
}

func (s *Service) open(ctx context.Context, model *fb.Model) (*form, error) {
	ec, err := editform.New(model)
	if err != nil {
		return nil, err
	}

	lang := i18n.GetLocale(ctx)
	v, err := fb.New(ec,
		fb.WithLogger(s.log.With(logger.Lang(lang))),
		fb.WithTranslator(s.tr, lang),
	)
	if err != nil {
		return nil, err
	}

	f := &form{ec: ec, v: v}
	f.sub = ec.OnValidationStateChanged(func(editform.ValidationStateChangedEvent) { f.renders++ })
	return f, nil
}

func (f *form) close() {
	_ = f.sub.Close()
	_ = f.v.Close()
}
