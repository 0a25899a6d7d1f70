package models

import "errors"

// Failure classes surfaced to the caller layer. Each layer wraps its
// underlying error with one of these so callers can match with errors.Is.
var (
	// ErrDocumentLoad covers unreadable, missing or corrupt document sources.
	ErrDocumentLoad = errors.New("document load failed")

	// ErrEmptyCorpus is returned when chunking produced zero chunks.
	ErrEmptyCorpus = errors.New("no chunks to index")

	// ErrEmbedding covers embedding model failures during index build or query.
	ErrEmbedding = errors.New("embedding failed")

	// ErrCredential is returned when the model API key is missing at startup.
	ErrCredential = errors.New("missing model credential")

	// ErrGeneration covers model invocation failures. Recoverable: the caller
	// may resubmit the question, conversation memory is left intact.
	ErrGeneration = errors.New("generation failed")
)
