// Package report renders the diagnostic and evaluation views of a trained
// model. Output is line-oriented and stable: labels and words iterate in
// sorted order and floats print with 3 significant digits.
package report

import (
	"fmt"
	"io"

	"github.com/davidgmz15/tagsense/internal/classifier"
	"github.com/davidgmz15/tagsense/internal/corpus"
)

// WriteTrainingData replays every stored training example followed by the
// corpus totals.
func WriteTrainingData(w io.Writer, m *classifier.Model) {
	fmt.Fprintln(w, "training data:")
	for _, ex := range m.Examples() {
		fmt.Fprintf(w, "  label = %s, content = %s\n", ex.Label, ex.Content)
	}
	fmt.Fprintf(w, "trained on %d examples\n", m.TotalDocuments())
	fmt.Fprintf(w, "vocabulary size = %d\n", m.VocabularySize())
	fmt.Fprintln(w)
}

// WriteParameters prints the per-label priors and every nonzero label/word
// likelihood.
func WriteParameters(w io.Writer, m *classifier.Model) {
	fmt.Fprintln(w, "classes:")
	for _, label := range m.Labels() {
		fmt.Fprintf(w, "  %s, %d examples, log-prior = %.3g\n",
			label, m.LabelCount(label), m.LogPrior(label))
	}

	fmt.Fprintln(w, "classifier parameters:")
	for _, label := range m.Labels() {
		for _, word := range m.WordsForLabel(label) {
			fmt.Fprintf(w, "  %s:%s, count = %d, log-likelihood = %.3g\n",
				label, word, m.LabelWordCount(label, word), m.LogLikelihood(label, word))
		}
	}
}

// Evaluation accumulates exact-match accuracy over a test set.
type Evaluation struct {
	Correct int
	Total   int
}

func (e Evaluation) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total)
}

// Evaluate predicts every post in order, printing each outcome and a final
// accuracy line.
func Evaluate(w io.Writer, m *classifier.Model, posts []corpus.Post) (Evaluation, error) {
	fmt.Fprintf(w, "trained on %d examples\n\n", m.TotalDocuments())
	fmt.Fprintln(w, "test data:")

	var ev Evaluation
	for _, post := range posts {
		p, err := m.Predict(post.Content)
		if err != nil {
			return Evaluation{}, err
		}

		ev.Total++
		if p.Label == post.Label {
			ev.Correct++
		}

		fmt.Fprintf(w, "  correct = %s, predicted = %s, log-probability score = %.3g\n",
			post.Label, p.Label, p.Score)
		fmt.Fprintf(w, "  content = %s\n\n", post.Content)
	}

	fmt.Fprintf(w, "performance: %d / %d posts predicted correctly\n\n", ev.Correct, ev.Total)
	return ev, nil
}
