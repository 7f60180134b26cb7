// Package tfidf fits a term-frequency / inverse-document-frequency model
// over a corpus and produces one sparse weight vector per document.
package tfidf

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// ErrEmptyVocabulary is returned when no term survives tokenization and pruning.
var ErrEmptyVocabulary = errors.New("empty vocabulary; documents may only contain stop words")

// Vector is a sparse row. Indices are ascending column numbers.
type Vector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v Vector) Len() int {
	return len(v.Indices)
}

// Model is a fitted vectorizer together with the document-term matrix of
// the corpus it was fitted on.
type Model struct {
	Options    Options
	Vocabulary map[string]int
	Terms      []string
	IDF        []float64
	Matrix     []Vector

	pattern *regexp.Regexp
	stop    map[string]struct{}
}

// Fit learns the vocabulary and idf weights of docs and returns the model
// with one row per document, in the order given.
func Fit(docs []string, opts Options) (*Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := &Model{Options: opts}
	m.pattern = regexp.MustCompile(opts.TokenPattern)
	m.stop = stopList(opts)

	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	totals := make(map[string]int)
	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, term := range m.Analyze(doc) {
			counts[i][term]++
		}
		for term, n := range counts[i] {
			df[term]++
			totals[term] += n
		}
	}

	terms, err := m.prune(df, totals, len(docs))
	if err != nil {
		return nil, err
	}

	m.Terms = terms
	m.Vocabulary = make(map[string]int, len(terms))
	m.IDF = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		m.Vocabulary[term] = i
		m.IDF[i] = idf(float64(df[term]), n, opts)
	}

	m.Matrix = make([]Vector, len(docs))
	for i := range docs {
		m.Matrix[i] = m.weigh(counts[i])
	}
	return m, nil
}

// Transform vectorizes a new document with the fitted vocabulary.
// Terms outside the vocabulary are ignored.
func (m *Model) Transform(doc string) Vector {
	counts := make(map[string]int)
	for _, term := range m.Analyze(doc) {
		counts[term]++
	}
	return m.weigh(counts)
}

// Analyze splits doc into terms: tokens matched by the token pattern,
// minus stop words, expanded to the configured n-gram range.
func (m *Model) Analyze(doc string) []string {
	if m.Options.Lowercase {
		doc = strings.ToLower(doc)
	}

	var tokens []string
	for _, tok := range m.pattern.FindAllString(doc, -1) {
		if _, stop := m.stop[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	lo, hi := m.Options.NgramRange[0], m.Options.NgramRange[1]
	if lo == 1 && hi == 1 {
		return tokens
	}

	var terms []string
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func (m *Model) prune(df, totals map[string]int, numDocs int) ([]string, error) {
	minDF, maxDF := m.Options.documentBounds(numDocs)
	if numDocs > 0 && maxDF < minDF {
		return nil, &OptionError{Option: "max_df", Reason: "corresponds to fewer documents than min_df"}
	}

	terms := make([]string, 0, len(df))
	for term, n := range df {
		if n >= minDF && n <= maxDF {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, ErrEmptyVocabulary
	}

	if limit := m.Options.MaxFeatures; limit > 0 && len(terms) > limit {
		slices.SortFunc(terms, func(a, b string) int {
			if c := cmp.Compare(totals[b], totals[a]); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})
		terms = terms[:limit]
	}

	sort.Strings(terms)
	return terms, nil
}

func (m *Model) weigh(counts map[string]int) Vector {
	var v Vector
	for term := range counts {
		col, ok := m.Vocabulary[term]
		if !ok {
			continue
		}
		v.Indices = append(v.Indices, col)
	}
	sort.Ints(v.Indices)

	v.Values = make([]float64, len(v.Indices))
	for i, col := range v.Indices {
		tf := float64(counts[m.Terms[col]])
		switch {
		case m.Options.Binary:
			tf = 1
		case m.Options.SublinearTF:
			tf = 1 + math.Log(tf)
		}
		v.Values[i] = tf * m.IDF[col]
	}

	normalize(v.Values, m.Options.Norm)
	return v
}

func idf(df, n float64, opts Options) float64 {
	if !opts.UseIDF {
		return 1
	}
	if opts.SmoothIDF {
		return math.Log((1+n)/(1+df)) + 1
	}
	return math.Log(n/df) + 1
}

func normalize(values []float64, norm string) {
	var total float64
	switch norm {
	case "l2":
		for _, v := range values {
			total += v * v
		}
		total = math.Sqrt(total)
	case "l1":
		for _, v := range values {
			total += math.Abs(v)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}

func stopList(opts Options) map[string]struct{} {
	stop := make(map[string]struct{}, len(englishStopWords)+len(opts.ExtraStopWords))
	if opts.StopWords == "english" {
		for w := range englishStopWords {
			stop[w] = struct{}{}
		}
	}
	for _, w := range opts.ExtraStopWords {
		if opts.Lowercase {
			w = strings.ToLower(w)
		}
		stop[w] = struct{}{}
	}
	return stop
}

// String summarizes the fitted model.
func (m *Model) String() string {
	return fmt.Sprintf("tfidf(docs=%d, terms=%d, ngram=%v)", len(m.Matrix), len(m.Terms), m.Options.NgramRange)
}
