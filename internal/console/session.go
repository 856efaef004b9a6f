package console

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"ethToolBox/internal/model"
	"ethToolBox/internal/session"
)

// Sink receives log entries as they are appended.
type Sink interface {
	PutEntryBatch(ctx context.Context, entries []model.LogEntry) error
}

// Session owns one toolbox state. Calls are serialized so the result log has
// a single writer.
type Session struct {
	id string

	mu      sync.Mutex
	console *Console
	state   session.State
	sink    Sink
	flushed int
	logger  *zap.Logger
}

// NewSession starts a session. sink may be nil.
func NewSession(id string, c *Console, sink Sink, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		id:      id,
		console: c,
		state:   session.NewState(id, c.dispatcher.Now()),
		sink:    sink,
		logger:  logger.With(zap.String("session", id)),
	}
}

func (s *Session) ID() string {
	return s.id
}

// State returns a snapshot of the current state.
func (s *Session) State() session.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Entries returns the whole result log.
func (s *Session) Entries() []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Log.Entries()
}

// Eval executes one console line and returns the entries it appended.
func (s *Session) Eval(ctx context.Context, line string) ([]model.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.state.Log.Len()
	s.state = s.console.Exec(ctx, s.state, line)
	return s.commit(ctx, before)
}

// Call sets the named inputs, optionally replaces the function signature and
// encode arguments, then dispatches kind.
func (s *Session) Call(ctx context.Context, kind model.Kind, inputs map[string]string, signature string, args []string) ([]model.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	for name, value := range inputs {
		field, err := session.ParseField(name)
		if err != nil {
			return nil, err
		}
		next = session.Reduce(next, session.SetInput{Field: field, Value: value})
	}
	if signature != "" {
		next = session.Reduce(next, session.SetSignature{Text: signature})
		if next.Descriptor == nil && next.AbiError != "" {
			return nil, fmt.Errorf("abi: %s", next.AbiError)
		}
	}
	if len(args) > 0 {
		if len(args) != len(next.Args) {
			return nil, fmt.Errorf("expected %d arguments, got %d", len(next.Args), len(args))
		}
		for i, arg := range args {
			next = session.Reduce(next, session.SetArgument{Index: i, Value: arg})
		}
	}

	before := next.Log.Len()
	s.state = s.console.dispatcher.Dispatch(ctx, next, kind)
	return s.commit(ctx, before)
}

// Flush writes any entries the sink has not seen yet.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.commit(ctx, s.state.Log.Len())
	return err
}

func (s *Session) commit(ctx context.Context, before int) ([]model.LogEntry, error) {
	added := s.state.Log.Since(before)
	if s.sink == nil {
		s.flushed = s.state.Log.Len()
		return added, nil
	}
	pending := s.state.Log.Since(s.flushed)
	if len(pending) == 0 {
		return added, nil
	}
	if err := s.sink.PutEntryBatch(ctx, pending); err != nil {
		s.logger.Warn("transcript write failed", zap.Int("pending", len(pending)), zap.Error(err))
		return added, fmt.Errorf("write transcript: %w", err)
	}
	s.flushed = s.state.Log.Len()
	return added, nil
}

// Convert runs a request without touching the session state.
func (s *Session) Convert(ctx context.Context, req model.ConversionRequest) (string, error) {
	return s.console.dispatcher.Convert(ctx, req)
}
