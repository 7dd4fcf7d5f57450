package structdump

import (
	"log/slog"

	"github.com/viant/tagly/format/text"
)

//Option walker option
type Option func(w *Walker)

//Options represents walker options
type Options []Option

//Apply applies options
func (o Options) Apply(w *Walker) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		opt(w)
	}
}

//WithOwnedPrefix adds type name prefixes of types expanded field by field, i.e. "github.com/acme/app"
func WithOwnedPrefix(prefixes ...string) Option {
	return func(w *Walker) {
		for _, prefix := range prefixes {
			if prefix == "" {
				continue
			}
			w.ownedPrefixes = append(w.ownedPrefixes, prefix)
		}
	}
}

//WithLogger sets diagnostic trace logger
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

//WithCaseFormat sets composite field name case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(w *Walker) {
		w.caseFormat = caseFormat
	}
}
