package classifier

import (
	"errors"
	"math"
	"sort"
)

// ErrNotTrained is returned by Predict when the model has ingested no
// training examples yet.
var ErrNotTrained = errors.New("classifier: model has no trained labels")

// Example is one raw training record, kept verbatim for diagnostic replay.
type Example struct {
	Label   string
	Content string
}

// Prediction is a scored label for one piece of content.
type Prediction struct {
	Label string
	Score float64
}

// Model is a multinomial Naive Bayes classifier over word presence. Counts
// are per document: a word repeated inside one document still counts once.
// Train calls must not overlap Predict calls; the model does no locking.
type Model struct {
	totalDocs     int
	vocabulary    map[string]struct{}
	docFreq       map[string]int
	labelFreq     map[string]int
	labelWordFreq map[string]map[string]int
	examples      []Example
}

func NewModel() *Model {
	return &Model{
		vocabulary:    make(map[string]struct{}),
		docFreq:       make(map[string]int),
		labelFreq:     make(map[string]int),
		labelWordFreq: make(map[string]map[string]int),
	}
}

// Train ingests one labeled document. Empty content still counts as a
// trained document.
func (m *Model) Train(label, content string) {
	m.totalDocs++
	m.labelFreq[label]++

	words := m.labelWordFreq[label]
	if words == nil {
		words = make(map[string]int)
		m.labelWordFreq[label] = words
	}

	for _, w := range UniqueWords(content) {
		m.vocabulary[w] = struct{}{}
		m.docFreq[w]++
		words[w]++
	}

	m.examples = append(m.examples, Example{Label: label, Content: content})
}

// LogPrior returns ln P(label). The label must have been seen in training
// and at least one document must have been ingested.
func (m *Model) LogPrior(label string) float64 {
	return math.Log(float64(m.labelFreq[label]) / float64(m.totalDocs))
}

// LogLikelihood returns ln P(word | label). Words never seen with the label
// back off to their corpus-wide document frequency, and words never seen at
// all to a single pseudo-occurrence over the whole corpus.
func (m *Model) LogLikelihood(label, word string) float64 {
	if c := m.labelWordFreq[label][word]; c > 0 {
		return math.Log(float64(c) / float64(m.labelFreq[label]))
	}
	if g := m.docFreq[word]; g > 0 {
		return math.Log(float64(g) / float64(m.totalDocs))
	}
	return math.Log(1 / float64(m.totalDocs))
}

// Predict scores content against every trained label and returns the best.
// Exact score ties resolve to the lexicographically smaller label.
func (m *Model) Predict(content string) (Prediction, error) {
	if len(m.labelFreq) == 0 {
		return Prediction{}, ErrNotTrained
	}

	words := UniqueWords(content)

	best := Prediction{Score: math.Inf(-1)}
	for _, label := range m.Labels() {
		score := m.score(label, words)
		if score > best.Score || (score == best.Score && label < best.Label) {
			best = Prediction{Label: label, Score: score}
		}
	}
	return best, nil
}

// Scores ranks every trained label against content, best first. Ties keep
// lexicographic label order.
func (m *Model) Scores(content string) ([]Prediction, error) {
	if len(m.labelFreq) == 0 {
		return nil, ErrNotTrained
	}

	words := UniqueWords(content)

	ranked := make([]Prediction, 0, len(m.labelFreq))
	for _, label := range m.Labels() {
		ranked = append(ranked, Prediction{Label: label, Score: m.score(label, words)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

func (m *Model) score(label string, words []string) float64 {
	score := m.LogPrior(label)
	for _, w := range words {
		score += m.LogLikelihood(label, w)
	}
	return score
}

func (m *Model) TotalDocuments() int {
	return m.totalDocs
}

func (m *Model) VocabularySize() int {
	return len(m.vocabulary)
}

// Labels returns every trained label in sorted order.
func (m *Model) Labels() []string {
	labels := make([]string, 0, len(m.labelFreq))
	for l := range m.labelFreq {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func (m *Model) LabelCount(label string) int {
	return m.labelFreq[label]
}

// WordsForLabel returns the words seen in at least one document with the
// label, in sorted order.
func (m *Model) WordsForLabel(label string) []string {
	words := make([]string, 0, len(m.labelWordFreq[label]))
	for w := range m.labelWordFreq[label] {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func (m *Model) LabelWordCount(label, word string) int {
	return m.labelWordFreq[label][word]
}

func (m *Model) DocCount(word string) int {
	return m.docFreq[word]
}

// Examples returns the raw training records in ingestion order.
func (m *Model) Examples() []Example {
	return m.examples
}
