// Package lsp serves lunar diagnostics, folding ranges and document
// symbols over the Language Server Protocol.
package lsp

import (
	"errors"
	"sync"
	"time"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	// registers the commonlog backend glsp logs through
	_ "github.com/tliron/commonlog/simple"

	"lunar/internal/dialect"
	"lunar/internal/driver"
	"lunar/internal/project"
	"lunar/internal/trace"
)

const lsName = "lunar"

// ErrUnknownDocument is returned for requests on a document that was never opened.
var ErrUnknownDocument = errors.New("lsp: unknown document")

// ServerOptions configures the server.
type ServerOptions struct {
	// Debounce delays analysis after an edit; zero analyzes synchronously.
	Debounce time.Duration
	// Dialect overrides the lunar.toml setting when non-empty.
	Dialect string
	// MaxDiagnostics overrides the lunar.toml setting when positive.
	MaxDiagnostics int
	Version        string
	Tracer         trace.Tracer
}

// Server is a stdio language server for Lua sources.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	log     commonlog.Logger
	opts    ServerOptions

	mu       sync.Mutex
	parse    driver.Options
	docs     map[protocol.DocumentUri]*document
	timers   map[protocol.DocumentUri]*time.Timer
	notify   glsp.NotifyFunc
	root     string
	shutdown bool
}

// NewServer builds a server; call RunStdio to serve.
func NewServer(opts ServerOptions) *Server {
	s := &Server{
		log:  commonlog.GetLogger(lsName + ".server"),
		opts: opts,
		parse: driver.Options{
			Version:        dialect.All,
			MaxDiagnostics: opts.MaxDiagnostics,
			Tracer:         opts.Tracer,
		},
		docs:   make(map[protocol.DocumentUri]*document),
		timers: make(map[protocol.DocumentUri]*time.Timer),
	}
	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdownHandler,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.didOpen,
		TextDocumentDidChange:      s.didChange,
		TextDocumentDidClose:       s.didClose,
		TextDocumentDidSave:        s.didSave,
		TextDocumentFoldingRange:   s.foldingRange,
		TextDocumentDocumentSymbol: s.documentSymbol,
	}
	s.server = server.NewServer(&s.handler, lsName, false)
	return s
}

// RunStdio serves requests on stdin/stdout until the client exits.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	root := ""
	if params.RootURI != nil && *params.RootURI != "" {
		root = uriToPath(*params.RootURI)
	}
	if root == "" && params.RootPath != nil {
		root = *params.RootPath
	}
	if root == "" {
		root = "."
	}
	if err := s.configure(root); err != nil {
		s.log.Warningf("using defaults: %s", err)
	}

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	openClose := true
	includeText := true
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: &includeText},
	}

	version := s.opts.Version
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

// configure reads lunar.toml above root and applies the dialect override.
func (s *Server) configure(root string) error {
	m, _, err := project.Load(root)
	if err != nil {
		return err
	}
	name := m.Config.Parse.Dialect
	if s.opts.Dialect != "" {
		name = s.opts.Dialect
	}
	v, err := dialect.Parse(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = m.Root
	s.parse.Version = v
	if s.opts.MaxDiagnostics <= 0 {
		s.parse.MaxDiagnostics = m.Config.Parse.MaxDiagnostics
	}
	s.log.Infof("root %s, dialect %s", m.Root, v)
	return nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdownHandler(ctx *glsp.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdown = true
	for uri, t := range s.timers {
		t.Stop()
		delete(s.timers, uri)
	}
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc := &document{text: params.TextDocument.Text, version: params.TextDocument.Version}
	s.docs[uri] = doc
	s.mu.Unlock()
	s.schedule(ctx, uri, 0)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		s.mu.Unlock()
		return ErrUnknownDocument
	}
	for _, change := range params.ContentChanges {
		doc.text = applyChange(doc.text, change)
	}
	doc.version = params.TextDocument.Version
	s.mu.Unlock()
	s.schedule(ctx, uri, s.opts.Debounce)
	return nil
}

func (s *Server) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if ok && params.Text != nil {
		doc.text = *params.Text
	}
	s.mu.Unlock()
	if !ok {
		return nil
	}
	s.schedule(ctx, uri, 0)
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.docs, uri)
	if t, ok := s.timers[uri]; ok {
		t.Stop()
		delete(s.timers, uri)
	}
	s.mu.Unlock()
	if ctx.Notify != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

func (s *Server) foldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	snap, err := s.current(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return buildFoldingRanges(snap), nil
}

func (s *Server) documentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	snap, err := s.current(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return buildDocumentSymbols(snap), nil
}

// schedule bumps the document generation and analyzes it after delay.
func (s *Server) schedule(ctx *glsp.Context, uri protocol.DocumentUri, delay time.Duration) {
	s.mu.Lock()
	if ctx != nil && ctx.Notify != nil {
		s.notify = ctx.Notify
	}
	doc, ok := s.docs[uri]
	if !ok || s.shutdown {
		s.mu.Unlock()
		return
	}
	doc.gen++
	gen := doc.gen
	if t, ok := s.timers[uri]; ok {
		t.Stop()
		delete(s.timers, uri)
	}
	if delay > 0 {
		s.timers[uri] = time.AfterFunc(delay, func() { s.analyzeAndPublish(uri, gen) })
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.analyzeAndPublish(uri, gen)
}

func (s *Server) analyzeAndPublish(uri protocol.DocumentUri, gen uint64) {
	snap := s.analyzeGen(uri, gen)
	if snap == nil {
		return
	}
	s.mu.Lock()
	notify := s.notify
	s.mu.Unlock()
	if notify != nil {
		notify(protocol.ServerTextDocumentPublishDiagnostics, publishParams(snap))
	}
}

// analyzeGen parses generation gen of uri, or returns nil when the
// document moved on or was closed.
func (s *Server) analyzeGen(uri protocol.DocumentUri, gen uint64) *snapshot {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok || doc.gen != gen {
		s.mu.Unlock()
		return nil
	}
	text, version, opts := doc.text, doc.version, s.parse
	s.mu.Unlock()

	snap := analyze(uri, version, gen, text, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok = s.docs[uri]
	if !ok || doc.gen != gen {
		return nil
	}
	doc.snap = snap
	return snap
}

// current returns an up-to-date snapshot, analyzing a pending edit now.
func (s *Server) current(uri protocol.DocumentUri) (*snapshot, error) {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownDocument
	}
	if doc.snap != nil && doc.snap.gen == doc.gen {
		snap := doc.snap
		s.mu.Unlock()
		return snap, nil
	}
	gen := doc.gen
	s.mu.Unlock()
	if snap := s.analyzeGen(uri, gen); snap != nil {
		return snap, nil
	}
	return s.current(uri)
}
