package classifier_test

import (
	"errors"
	"math"
	"testing"

	"github.com/davidgmz15/tagsense/internal/classifier"
)

func TestTrainCountConsistency(t *testing.T) {
	m := classifier.NewModel()
	m.Train("sports", "great game great")
	m.Train("sports", "close game")
	m.Train("politics", "great debate")
	m.Train("politics", "")

	if got := m.TotalDocuments(); got != 4 {
		t.Fatalf("TotalDocuments = %d, want 4", got)
	}

	sum := 0
	for _, label := range m.Labels() {
		sum += m.LabelCount(label)
	}
	if sum != m.TotalDocuments() {
		t.Errorf("sum of label counts = %d, want %d", sum, m.TotalDocuments())
	}

	words := map[string]struct{}{}
	for _, label := range m.Labels() {
		for _, w := range m.WordsForLabel(label) {
			words[w] = struct{}{}
		}
	}
	if len(words) != m.VocabularySize() {
		t.Errorf("distinct words across labels = %d, want vocabulary size %d", len(words), m.VocabularySize())
	}

	for w := range words {
		perLabel := 0
		for _, label := range m.Labels() {
			c := m.LabelWordCount(label, w)
			if c > m.LabelCount(label) {
				t.Errorf("count(%q,%q) = %d exceeds label count %d", label, w, c, m.LabelCount(label))
			}
			if c > m.DocCount(w) {
				t.Errorf("count(%q,%q) = %d exceeds doc count %d", label, w, c, m.DocCount(w))
			}
			perLabel += c
		}
		if perLabel != m.DocCount(w) {
			t.Errorf("doc count for %q = %d, want sum over labels %d", w, m.DocCount(w), perLabel)
		}
	}
}

func TestTrainDeduplicatesWithinDocument(t *testing.T) {
	m := classifier.NewModel()
	m.Train("x", "a a b")
	m.Train("x", "a a b")

	if got := m.LabelWordCount("x", "a"); got != 2 {
		t.Errorf("count(x,a) = %d, want 2", got)
	}
	if got := m.LabelWordCount("x", "b"); got != 2 {
		t.Errorf("count(x,b) = %d, want 2", got)
	}
	if got := m.DocCount("a"); got != 2 {
		t.Errorf("doc count for a = %d, want 2", got)
	}
	if got := m.VocabularySize(); got != 2 {
		t.Errorf("vocabulary size = %d, want 2", got)
	}
}

func TestTrainEmptyContent(t *testing.T) {
	m := classifier.NewModel()
	m.Train("x", "")

	if got := m.TotalDocuments(); got != 1 {
		t.Errorf("TotalDocuments = %d, want 1", got)
	}
	if got := m.VocabularySize(); got != 0 {
		t.Errorf("vocabulary size = %d, want 0", got)
	}
	if got := m.LabelCount("x"); got != 1 {
		t.Errorf("label count = %d, want 1", got)
	}
}

func TestLogPrior(t *testing.T) {
	m := classifier.NewModel()
	m.Train("x", "a")
	m.Train("x", "b")
	m.Train("x", "c")
	m.Train("y", "d")

	if got := m.LogPrior("x"); got != math.Log(0.75) {
		t.Errorf("LogPrior(x) = %v, want %v", got, math.Log(0.75))
	}
	if got := m.LogPrior("y"); got != math.Log(0.25) {
		t.Errorf("LogPrior(y) = %v, want %v", got, math.Log(0.25))
	}
}

func TestLogLikelihoodTiers(t *testing.T) {
	m := classifier.NewModel()
	m.Train("a", "foo bar")
	m.Train("a", "foo")
	m.Train("b", "baz")
	m.Train("b", "qux")

	tests := []struct {
		name  string
		label string
		word  string
		want  float64
	}{
		{"word seen with label", "a", "foo", math.Log(2.0 / 2.0)},
		{"word seen once with label", "a", "bar", math.Log(1.0 / 2.0)},
		{"word seen only under other label", "b", "foo", math.Log(2.0 / 4.0)},
		{"word never seen", "a", "zap", math.Log(1.0 / 4.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.LogLikelihood(tt.label, tt.word); got != tt.want {
				t.Errorf("LogLikelihood(%q, %q) = %v, want %v", tt.label, tt.word, got, tt.want)
			}
		})
	}
}

func TestPredictTieBreak(t *testing.T) {
	orders := [][]classifier.Example{
		{{Label: "sports", Content: "great game"}, {Label: "politics", Content: "great debate"}},
		{{Label: "politics", Content: "great debate"}, {Label: "sports", Content: "great game"}},
	}

	for _, examples := range orders {
		m := classifier.NewModel()
		for _, ex := range examples {
			m.Train(ex.Label, ex.Content)
		}

		p, err := m.Predict("great")
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if p.Label != "politics" {
			t.Errorf("predicted %q, want politics (training order %v)", p.Label, examples)
		}
		if p.Score != math.Log(0.5) {
			t.Errorf("score = %v, want %v", p.Score, math.Log(0.5))
		}
	}
}

func TestPredictUntrained(t *testing.T) {
	m := classifier.NewModel()

	_, err := m.Predict("anything")
	if !errors.Is(err, classifier.ErrNotTrained) {
		t.Errorf("Predict error = %v, want ErrNotTrained", err)
	}

	_, err = m.Scores("anything")
	if !errors.Is(err, classifier.ErrNotTrained) {
		t.Errorf("Scores error = %v, want ErrNotTrained", err)
	}
}

func TestPredictPicksStrongerEvidence(t *testing.T) {
	m := classifier.NewModel()
	m.Train("sports", "great game tonight")
	m.Train("sports", "the game was close")
	m.Train("politics", "the debate tonight")
	m.Train("politics", "a heated debate")

	p, err := m.Predict("a close game")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if p.Label != "sports" {
		t.Errorf("predicted %q, want sports", p.Label)
	}

	p, err = m.Predict("a heated debate")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if p.Label != "politics" {
		t.Errorf("predicted %q, want politics", p.Label)
	}
}

func TestScoresRanked(t *testing.T) {
	m := classifier.NewModel()
	m.Train("sports", "great game")
	m.Train("politics", "great debate")

	ranked, err := m.Scores("great")
	if err != nil {
		t.Fatalf("Scores failed: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("got %d ranked labels, want 2", len(ranked))
	}
	if ranked[0].Label != "politics" || ranked[1].Label != "sports" {
		t.Errorf("tie order = [%s %s], want [politics sports]", ranked[0].Label, ranked[1].Label)
	}
	if ranked[0].Score != ranked[1].Score {
		t.Errorf("expected equal scores, got %v and %v", ranked[0].Score, ranked[1].Score)
	}

	p, err := m.Predict("great")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if p != ranked[0] {
		t.Errorf("Predict = %+v, want top of Scores %+v", p, ranked[0])
	}
}

func TestMonotonicity(t *testing.T) {
	m := classifier.NewModel()
	m.Train("x", "foo bar")

	vocabBefore := m.VocabularySize()
	fooBefore := m.DocCount("foo")

	m.Train("y", "foo baz")
	m.Train("z", "quux")

	if m.VocabularySize() < vocabBefore {
		t.Errorf("vocabulary shrank from %d to %d", vocabBefore, m.VocabularySize())
	}
	if m.DocCount("foo") < fooBefore {
		t.Errorf("doc count for foo shrank from %d to %d", fooBefore, m.DocCount("foo"))
	}
}

func TestExamplesKeepIngestionOrder(t *testing.T) {
	m := classifier.NewModel()
	m.Train("b", "second label first")
	m.Train("a", "first label second")

	examples := m.Examples()
	if len(examples) != 2 {
		t.Fatalf("got %d examples, want 2", len(examples))
	}
	if examples[0].Label != "b" || examples[1].Label != "a" {
		t.Errorf("examples out of order: %+v", examples)
	}
	if examples[0].Content != "second label first" {
		t.Errorf("content not stored verbatim: %q", examples[0].Content)
	}
}
