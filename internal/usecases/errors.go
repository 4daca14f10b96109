package usecases

import "errors"

var (
	ErrNoQuotes   = errors.New("quote list is empty")
	ErrEmptyQuote = errors.New("quote text is empty")
)
