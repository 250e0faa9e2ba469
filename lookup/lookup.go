package lookup

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/lai323/jdict/jotoba"
	"github.com/lai323/jdict/note"
)

// Searcher is the dictionary collaborator, implemented by *jotoba.Client.
type Searcher interface {
	SearchWords(ctx context.Context, query string) (*jotoba.SearchResponse, error)
}

const (
	stateCreate = "create note"
	stateLink   = "link to note"
)

// Fetch searches query and builds the result entries.
func Fetch(ctx context.Context, s Searcher, query string) ([]jotoba.DictionaryItem, error) {
	resp, err := s.SearchWords(ctx, query)
	if err != nil {
		return nil, err
	}
	items, err := jotoba.Items(resp)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", query, err)
	}
	return items, nil
}

// noteStates labels each item with what applying it would do. Items whose
// note cannot be checked get no label.
func noteStates(maker *note.Maker, items []jotoba.DictionaryItem) []string {
	states := make([]string, len(items))
	for i, item := range items {
		exists, err := maker.Exists(item)
		switch {
		case err != nil:
		case exists:
			states[i] = stateLink
		default:
			states[i] = stateCreate
		}
	}
	return states
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll
