package entity

import "errors"

var (
	ErrWordNotFound        = errors.New("word not found in catalog")
	ErrInsufficientCatalog = errors.New("catalog too small for requested sample")
	ErrNoPendingQuestion   = errors.New("no pending audio question")
	ErrUnknownTier         = errors.New("unknown question tier")
	ErrCollectionFull      = errors.New("word collection is full")
	ErrAlreadyCollected    = errors.New("word already in collection")
	ErrNotCollected        = errors.New("word not in collection")
)
