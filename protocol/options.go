package protocol

import (
	"fmt"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/logger"
	"github.com/kbukum/prism/partition"
	"github.com/kbukum/prism/preprocess"
)

type options struct {
	pre       map[string]partition.Preprocessor
	templates map[string]string
}

// Option configures one protocol instance.
type Option func(*options)

// WithPreprocessor attaches a preprocessor whose output is stored under key.
func WithPreprocessor(key string, p partition.Preprocessor) Option {
	return func(o *options) {
		if o.pre == nil {
			o.pre = make(map[string]partition.Preprocessor)
		}
		o.pre[key] = p
	}
}

// WithPreprocessors attaches several preprocessors.
func WithPreprocessors(pre map[string]partition.Preprocessor) Option {
	return func(o *options) {
		for k, p := range pre {
			WithPreprocessor(k, p)(o)
		}
	}
}

// WithTemplates attaches one preprocess.Template per key.
func WithTemplates(patterns map[string]string) Option {
	return func(o *options) {
		if o.templates == nil {
			o.templates = make(map[string]string)
		}
		for k, v := range patterns {
			o.templates[k] = v
		}
	}
}

// preprocessors merges templates and functions. A key set both ways is an error.
func (o *options) preprocessors() (map[string]partition.Preprocessor, error) {
	compiled, err := preprocess.Templates(o.templates)
	if err != nil {
		return nil, err
	}
	for k, p := range o.pre {
		if _, dup := compiled[k]; dup {
			return nil, errors.InvalidInput("preprocessors",
				fmt.Sprintf("key %q has both a template and a function", k)).
				WithDetail(logger.FieldOperation, "build")
		}
		compiled[k] = p
	}
	return compiled, nil
}
