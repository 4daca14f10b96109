package usecases

import (
	"fmt"
	"math/rand/v2"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"powgate/internal/domain"
)

//go:generate mockgen -source=quote.go -destination=mocks/quote_mock.go -package=mocks

// QuoteUsecase defines the interface for quote retrieval.
type QuoteUsecase interface {
	GetRandomQuote() string
}

type quoteUsecaseImpl struct {
	quotes []domain.Quote

	mu     sync.Mutex // guards source
	source *rand.Rand
}

var defaultQuotes = []domain.Quote{
	{Text: "Life is what happens when you're busy making other plans.", Author: "John Lennon"},
	{Text: "The greatest glory in living lies not in never falling, but in rising every time we fall.", Author: "Nelson Mandela"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Simplicity is prerequisite for reliability.", Author: "Edsger W. Dijkstra"},
	{Text: "Talk is cheap. Show me the code.", Author: "Linus Torvalds"},
}

func NewQuoteUsecase() QuoteUsecase {
	return &quoteUsecaseImpl{quotes: defaultQuotes}
}

// NewQuoteUsecaseWith uses quotes and, when source is not nil, picks with it.
func NewQuoteUsecaseWith(quotes []domain.Quote, source *rand.Rand) (QuoteUsecase, error) {
	if len(quotes) == 0 {
		return nil, ErrNoQuotes
	}
	return &quoteUsecaseImpl{quotes: quotes, source: source}, nil
}

// LoadQuoteUsecase reads a yaml list of quotes. Plain strings and {text, author} maps are both accepted.
func LoadQuoteUsecase(path string) (QuoteUsecase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quotes: %w", err)
	}

	var raw []yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quotes: %w", err)
	}

	quotes := make([]domain.Quote, 0, len(raw))
	for i := range raw {
		var q domain.Quote
		if raw[i].Kind == yaml.ScalarNode {
			q.Text = raw[i].Value
		} else if err := raw[i].Decode(&q); err != nil {
			return nil, fmt.Errorf("failed to parse quote %d: %w", i, err)
		}
		if q.Text == "" {
			return nil, fmt.Errorf("quote %d: %w", i, ErrEmptyQuote)
		}
		quotes = append(quotes, q)
	}

	return NewQuoteUsecaseWith(quotes, nil)
}

// GetRandomQuote returns a uniformly chosen quote.
func (q *quoteUsecaseImpl) GetRandomQuote() string {
	if q.source != nil {
		q.mu.Lock()
		i := q.source.IntN(len(q.quotes))
		q.mu.Unlock()
		return q.quotes[i].String()
	}
	return q.quotes[rand.IntN(len(q.quotes))].String()
}
