// Package matrix provides the sparse document-term matrix and its TF-IDF
// weighting and normalization steps.
package matrix

import "math"

// Entry is a single non-zero cell in a sparse row.
type Entry struct {
	Feature int
	Value   float64
}

// Sparse is a row-major sparse matrix. Feature indices are 0-based
// internally regardless of the file format they were read from.
type Sparse struct {
	rows     [][]Entry
	features int
}

// FromRows builds a matrix from sparse rows. The feature dimension is the
// highest feature index seen plus one.
func FromRows(rows [][]Entry) *Sparse {
	m := &Sparse{rows: rows}
	for _, row := range rows {
		for _, e := range row {
			if e.Feature >= m.features {
				m.features = e.Feature + 1
			}
		}
	}
	return m
}

// FromRowsWithWidth builds a matrix with an explicit feature dimension, for
// callers whose vocabulary is wider than the features actually present in
// the rows. The width grows if a row exceeds it.
func FromRowsWithWidth(rows [][]Entry, features int) *Sparse {
	m := FromRows(rows)
	if features > m.features {
		m.features = features
	}
	return m
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return len(m.rows) }

// Features returns the feature dimension.
func (m *Sparse) Features() int { return m.features }

// Row returns the non-zero entries of row i.
func (m *Sparse) Row(i int) []Entry { return m.rows[i] }

// IDFWeights computes the smoothed inverse document frequency of every
// feature: log(n / (1 + df)). Features that occur in no row get weight 0.
func (m *Sparse) IDFWeights() []float64 {
	df := make([]int, m.features)
	for _, row := range m.rows {
		for _, e := range row {
			if e.Value != 0 {
				df[e.Feature]++
			}
		}
	}
	n := float64(len(m.rows))
	weights := make([]float64, m.features)
	for f, d := range df {
		if d > 0 {
			weights[f] = math.Log(n / float64(1+d))
		}
	}
	return weights
}

// ScaleIDF returns a copy of the matrix with every cell multiplied by its
// feature's IDF weight. The receiver is left untouched.
func (m *Sparse) ScaleIDF(weights []float64) *Sparse {
	rows := make([][]Entry, len(m.rows))
	for i, row := range m.rows {
		scaled := make([]Entry, len(row))
		for j, e := range row {
			w := 0.0
			if e.Feature < len(weights) {
				w = weights[e.Feature]
			}
			scaled[j] = Entry{Feature: e.Feature, Value: e.Value * w}
		}
		rows[i] = scaled
	}
	return &Sparse{rows: rows, features: m.features}
}

// NormalizeL2 rescales every row to unit Euclidean norm in place. Rows that
// are entirely zero are left unchanged.
func (m *Sparse) NormalizeL2() {
	for _, row := range m.rows {
		var sum float64
		for _, e := range row {
			sum += e.Value * e.Value
		}
		if sum == 0 {
			continue
		}
		norm := 1 / math.Sqrt(sum)
		for j := range row {
			row[j].Value *= norm
		}
	}
}

// Dense materializes the matrix as dense rows. The clustering core and the
// coarse partitioner both operate on dense vectors.
func (m *Sparse) Dense() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i, row := range m.rows {
		dense := make([]float64, m.features)
		for _, e := range row {
			dense[e.Feature] = e.Value
		}
		out[i] = dense
	}
	return out
}
