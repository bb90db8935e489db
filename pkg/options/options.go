package options

// DefaultOptions: suggestions are offered liberally, auto-correction only
// fires on high-confidence matches.
var DefaultOptions = CorrectorOptions{
	SuggestionLimit:   3,
	SuggestionCutoff:  0.7,
	AutoCorrectCutoff: 0.8,
	Metric:            "ratio",
}

type CorrectorOptions struct {
	SuggestionLimit   int     // Maximum number of human-facing suggestions per word
	SuggestionCutoff  float64 // Minimum similarity for a suggestion
	AutoCorrectCutoff float64 // Minimum similarity for an automatic replacement
	Metric            string  // Similarity metric name, see matcher.Metrics
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithSuggestionLimit(limit int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.SuggestionLimit = limit
	})
}

func WithSuggestionCutoff(cutoff float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.SuggestionCutoff = cutoff
	})
}

func WithAutoCorrectCutoff(cutoff float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.AutoCorrectCutoff = cutoff
	})
}

func WithMetric(metric string) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Metric = metric
	})
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) CorrectorOptions {
	o := DefaultOptions
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(&o)
		}
	}
	return o
}
