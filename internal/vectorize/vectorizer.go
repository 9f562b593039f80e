package vectorize

import (
	"errors"
	"sort"

	"github.com/hyperjump/matome/internal/matrix"
)

// Options control vocabulary construction.
type Options struct {
	// MaxFeatures caps the vocabulary at the terms with the highest document
	// frequency. 0 means no cap.
	MaxFeatures int
	// MinDocFrequency drops terms occurring in fewer documents.
	MinDocFrequency int
	// MinTokenLength drops shorter tokens during tokenization.
	MinTokenLength int
}

// Vectorizer holds the vocabulary learned from a corpus.
type Vectorizer struct {
	opts  Options
	terms []string       // feature index -> term
	index map[string]int // term -> feature index
}

// ErrEmptyVocabulary is returned when no term survives pruning.
var ErrEmptyVocabulary = errors.New("vectorize: empty vocabulary")

// New builds a vectorizer from the corpus: tokenize every document, prune
// the vocabulary by document frequency, and assign feature indices in
// alphabetical order so the mapping is deterministic.
func New(texts []string, opts Options) (*Vectorizer, error) {
	if opts.MinTokenLength < 1 {
		opts.MinTokenLength = 1
	}
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(text, opts.MinTokenLength) {
			seen[tok] = struct{}{}
		}
		for tok := range seen {
			df[tok]++
		}
	}
	type termDF struct {
		term string
		df   int
	}
	kept := make([]termDF, 0, len(df))
	for term, n := range df {
		if opts.MinDocFrequency > 0 && n < opts.MinDocFrequency {
			continue
		}
		kept = append(kept, termDF{term, n})
	}
	if opts.MaxFeatures > 0 && len(kept) > opts.MaxFeatures {
		// Highest document frequency wins; alphabetical tie-break keeps the
		// cut deterministic.
		sort.Slice(kept, func(i, j int) bool {
			if kept[i].df != kept[j].df {
				return kept[i].df > kept[j].df
			}
			return kept[i].term < kept[j].term
		})
		kept = kept[:opts.MaxFeatures]
	}
	if len(kept) == 0 {
		return nil, ErrEmptyVocabulary
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].term < kept[j].term })

	v := &Vectorizer{
		opts:  opts,
		terms: make([]string, len(kept)),
		index: make(map[string]int, len(kept)),
	}
	for i, td := range kept {
		v.terms[i] = td.term
		v.index[td.term] = i
	}
	return v, nil
}

// Terms returns the vocabulary in feature-index order.
func (v *Vectorizer) Terms() []string { return v.terms }

// Matrix produces the L2-normalized TF-IDF matrix of the corpus: raw term
// counts per document, IDF reweighting, then unit-norm rows. Documents whose
// tokens all fall outside the vocabulary become zero rows, which the
// normalizer leaves unchanged.
func (v *Vectorizer) Matrix(texts []string) *matrix.Sparse {
	rows := make([][]matrix.Entry, len(texts))
	for i, text := range texts {
		counts := make(map[int]float64)
		for _, tok := range Tokenize(text, v.opts.MinTokenLength) {
			if f, ok := v.index[tok]; ok {
				counts[f]++
			}
		}
		row := make([]matrix.Entry, 0, len(counts))
		for f, n := range counts {
			row = append(row, matrix.Entry{Feature: f, Value: n})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].Feature < row[b].Feature })
		rows[i] = row
	}
	counts := matrix.FromRowsWithWidth(rows, len(v.terms))
	weighted := counts.ScaleIDF(counts.IDFWeights())
	weighted.NormalizeL2()
	return weighted
}

// TopTerms returns the k highest-weight terms of a centroid vector, used for
// human-readable cluster summaries. Terms with non-positive weight are
// skipped.
func (v *Vectorizer) TopTerms(centroid []float64, k int) []string {
	type tw struct {
		term   string
		weight float64
	}
	var ranked []tw
	for f, w := range centroid {
		if f < len(v.terms) && w > 0 {
			ranked = append(ranked, tw{v.terms[f], w})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].term < ranked[j].term
	})
	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].term
	}
	return out
}
