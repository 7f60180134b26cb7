package tfidf

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

var (
	// ErrUnsupportedOption is matched by an OptionError naming an unknown key.
	ErrUnsupportedOption = errors.New("unsupported vectorizer option")
	// ErrInvalidOption is matched by an OptionError carrying a bad value.
	ErrInvalidOption = errors.New("invalid vectorizer option")
)

// OptionError identifies the vectorizer option that was rejected.
type OptionError struct {
	Option string
	Reason string
}

func (e *OptionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unsupported vectorizer option %q", e.Option)
	}
	return fmt.Sprintf("invalid vectorizer option %q: %s", e.Option, e.Reason)
}

func (e *OptionError) Is(target error) bool {
	if e.Reason == "" {
		return target == ErrUnsupportedOption
	}
	return target == ErrInvalidOption
}

// DefaultTokenPattern matches runs of Unicode word characters. Tokens of a
// single character are kept.
const DefaultTokenPattern = `[\p{L}\p{M}\p{N}_]+`

// Options configures tokenization and weighting.
//
// MinDF below 1 and MaxDF up to 1 are proportions of the document count.
// Larger values must be whole numbers and count documents.
type Options struct {
	NgramRange     [2]int   `mapstructure:"ngram_range"`
	MaxFeatures    int      `mapstructure:"max_features"`
	MinDF          float64  `mapstructure:"min_df"`
	MaxDF          float64  `mapstructure:"max_df"`
	StopWords      string   `mapstructure:"stop_words"`
	ExtraStopWords []string `mapstructure:"extra_stop_words"`
	Lowercase      bool     `mapstructure:"lowercase"`
	TokenPattern   string   `mapstructure:"token_pattern"`
	UseIDF         bool     `mapstructure:"use_idf"`
	SmoothIDF      bool     `mapstructure:"smooth_idf"`
	SublinearTF    bool     `mapstructure:"sublinear_tf"`
	Binary         bool     `mapstructure:"binary"`
	Norm           string   `mapstructure:"norm"`
}

// DefaultOptions returns word unigrams with English stop words removed,
// smoothed idf and l2-normalized rows.
func DefaultOptions() Options {
	return Options{
		NgramRange:   [2]int{1, 1},
		MinDF:        1,
		MaxDF:        1.0,
		StopWords:    "english",
		Lowercase:    true,
		TokenPattern: DefaultTokenPattern,
		UseIDF:       true,
		SmoothIDF:    true,
		Norm:         "l2",
	}
}

// ParseOptions overlays raw on DefaultOptions. Keys the vectorizer does not
// know about are reported as an *OptionError.
func ParseOptions(raw map[string]any) (Options, error) {
	opts := DefaultOptions()
	if len(raw) == 0 {
		return opts, nil
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		Metadata:         &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Options{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return Options{}, &OptionError{Option: md.Unused[0]}
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks option values and ranges.
func (o Options) Validate() error {
	if o.NgramRange[0] < 1 || o.NgramRange[0] > o.NgramRange[1] {
		return &OptionError{Option: "ngram_range", Reason: fmt.Sprintf("need 1 <= min <= max, got %v", o.NgramRange)}
	}
	if o.MaxFeatures < 0 {
		return &OptionError{Option: "max_features", Reason: "must not be negative"}
	}
	if o.MinDF < 0 || (o.MinDF >= 1 && !isWhole(o.MinDF)) {
		return &OptionError{Option: "min_df", Reason: fmt.Sprintf("need a proportion in [0, 1) or a whole document count, got %v", o.MinDF)}
	}
	if o.MaxDF <= 0 || (o.MaxDF > 1 && !isWhole(o.MaxDF)) {
		return &OptionError{Option: "max_df", Reason: fmt.Sprintf("need a proportion in (0, 1] or a whole document count, got %v", o.MaxDF)}
	}
	switch o.StopWords {
	case "", "none", "english":
	default:
		return &OptionError{Option: "stop_words", Reason: fmt.Sprintf("unknown list %q", o.StopWords)}
	}
	switch o.Norm {
	case "", "none", "l1", "l2":
	default:
		return &OptionError{Option: "norm", Reason: fmt.Sprintf("unknown norm %q", o.Norm)}
	}
	if _, err := regexp.Compile(o.TokenPattern); err != nil || o.TokenPattern == "" {
		return &OptionError{Option: "token_pattern", Reason: "must be a non-empty regular expression"}
	}
	return nil
}

// documentBounds converts MinDF and MaxDF into inclusive document-frequency
// limits for a corpus of numDocs documents.
func (o Options) documentBounds(numDocs int) (lo, hi int) {
	const slack = 1e-9
	n := float64(numDocs)

	if o.MinDF < 1 {
		lo = int(math.Ceil(o.MinDF*n - slack))
	} else {
		lo = int(o.MinDF)
	}
	if o.MaxDF <= 1 {
		hi = int(math.Floor(o.MaxDF*n + slack))
	} else {
		hi = int(o.MaxDF)
	}
	return max(lo, 1), hi
}

func isWhole(f float64) bool {
	return f == math.Trunc(f)
}
