// Package rag ties the pipeline together: document processing, per-turn
// retrieval, prompt assembly and generation, behind one session value.
package rag

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"

	"richbot/internal/chunker"
	"richbot/internal/config"
	"richbot/internal/llm"
	"richbot/internal/loader"
	"richbot/internal/memory"
	"richbot/internal/models"
	"richbot/internal/prompt"
	"richbot/internal/vectorstore"
)

// ErrNoDocument is returned by Ask before any document has been processed.
var ErrNoDocument = errors.New("no document processed")

// Greeting is the assistant's opening line shown before the first turn.
const Greeting = "Halo, perkenalkan namaku RichBot! Aku adalah AI Chatbot yang siap membantumu mengenal Richard. Silakan ajukan pertanyaanmu."

// Session holds all per-session state: the current document's index, the
// conversation memory and the adjustable generation parameters. State only
// changes through ProcessDocument, Ask and Reset; the pending-turn invariant
// keeps one request in flight at a time.
type Session struct {
	cfg       *config.Config
	embedFn   chromem.EmbeddingFunc
	generator llm.Generator

	index   *vectorstore.Index
	memory  *memory.Memory
	params  models.Params
	docName string
}

func NewSession(cfg *config.Config, embedFn chromem.EmbeddingFunc, generator llm.Generator) *Session {
	return &Session{
		cfg:       cfg,
		embedFn:   embedFn,
		generator: generator,
		memory:    memory.New(),
		params: models.Params{
			Temperature: cfg.RAG.Temperature,
			TopP:        cfg.RAG.TopP,
			MaxTokens:   cfg.RAG.MaxTokens,
			TopK:        cfg.RAG.TopK,
		}.Clamp(),
	}
}

// ProcessDocument loads and indexes the document at path, replacing the
// current index wholesale. On failure the previous index stays in place.
func (s *Session) ProcessDocument(ctx context.Context, path string) (int, error) {
	text, err := loader.Load(path)
	if err != nil {
		return 0, err
	}
	return s.process(ctx, filepath.Base(path), text)
}

// ProcessUpload indexes an in-memory document, e.g. a user-supplied
// replacement profile.
func (s *Session) ProcessUpload(ctx context.Context, name string, data []byte) (int, error) {
	text, err := loader.LoadBytes(name, data)
	if err != nil {
		return 0, err
	}
	return s.process(ctx, name, text)
}

func (s *Session) process(ctx context.Context, name, text string) (int, error) {
	chunks := chunker.Split(text)
	index, err := vectorstore.BuildIndex(ctx, chunks, s.embedFn)
	if err != nil {
		return 0, err
	}
	s.index = index
	s.docName = name
	log.Info().Str("document", name).Int("chunks", len(chunks)).Msg("document processed")
	return len(chunks), nil
}

// Ask answers one question: retrieve, assemble the prompt, generate, record
// the completed turn. On generation failure the turn is rolled back and the
// question can simply be resubmitted; memory is never left corrupted.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	return s.ask(ctx, question, nil)
}

// AskStream is Ask with incremental output: fragments are passed to fn as
// they arrive and their concatenation equals the returned answer.
func (s *Session) AskStream(ctx context.Context, question string, fn func(fragment string) error) (string, error) {
	return s.ask(ctx, question, fn)
}

func (s *Session) ask(ctx context.Context, question string, streamFn func(string) error) (string, error) {
	if s.index == nil {
		return "", ErrNoDocument
	}
	if err := s.memory.Append(question); err != nil {
		return "", err
	}

	answer, err := s.answer(ctx, question, streamFn)
	if err != nil {
		s.memory.Abort()
		return "", err
	}
	if err := s.memory.Complete(answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (s *Session) answer(ctx context.Context, question string, streamFn func(string) error) (string, error) {
	results, err := s.index.Search(ctx, question, s.params.TopK)
	if err != nil {
		return "", err
	}
	contents := make([]string, 0, len(results))
	for _, r := range results {
		contents = append(contents, r.Content)
	}
	contextText := strings.Join(contents, models.ContextSeparator)

	history := memory.Format(s.memory.Window(s.cfg.RAG.HistoryWindow))
	instruction, err := prompt.Render(contextText, history, question)
	if err != nil {
		return "", err
	}

	if streamFn != nil {
		return s.generator.Stream(ctx, instruction, s.params, streamFn)
	}
	return s.generator.Generate(ctx, instruction, s.params)
}

// Reset clears the conversation. The document index is kept.
func (s *Session) Reset() {
	s.memory.Clear()
}

// History returns a copy of all turns for display.
func (s *Session) History() []memory.Turn {
	return s.memory.Turns()
}

// Params returns the current generation parameters.
func (s *Session) Params() models.Params {
	return s.params
}

// SetParams replaces the generation parameters, clamped to their bounds.
func (s *Session) SetParams(p models.Params) {
	s.params = p.Clamp()
}

// DocumentName reports which document is currently indexed.
func (s *Session) DocumentName() string {
	return s.docName
}

// Ready reports whether a document has been processed.
func (s *Session) Ready() bool {
	return s.index != nil
}

// ChunkCount reports the size of the current index, zero when not ready.
func (s *Session) ChunkCount() int {
	if s.index == nil {
		return 0
	}
	return s.index.Len()
}
