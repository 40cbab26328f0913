package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Post is one labeled text record.
type Post struct {
	Label   string
	Content string
}

// ErrMissingColumn is returned when the header row lacks a required column.
var ErrMissingColumn = errors.New("corpus: missing required column")

const (
	labelColumn   = "tag"
	contentColumn = "content"
)

// ReadPosts decodes labeled posts from CSV data. The first row is a header
// and must name the "tag" and "content" columns; extra columns are ignored
// and column order does not matter. Values are kept verbatim.
func ReadPosts(r io.Reader) ([]Post, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv records: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("empty csv input, expected a header row")
	}

	labelIdx, contentIdx := -1, -1
	for i, col := range records[0] {
		switch col {
		case labelColumn:
			labelIdx = i
		case contentColumn:
			contentIdx = i
		}
	}
	if labelIdx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, labelColumn)
	}
	if contentIdx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, contentColumn)
	}

	posts := make([]Post, 0, len(records)-1)
	for _, record := range records[1:] {
		posts = append(posts, Post{Label: record[labelIdx], Content: record[contentIdx]})
	}
	return posts, nil
}

// ReadPostsFile opens path and decodes every post in it.
func ReadPostsFile(path string) ([]Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadPosts(f)
}
