package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"gavel/internal/errors"
	"gavel/internal/parser"
	"gavel/internal/semantic"
)

var log = commonlog.GetLogger("gavel.lsp")

// SemanticTokenTypes is the legend advertised to clients; token types index into it.
var SemanticTokenTypes = []string{
	"keyword",
	"class",
	"property",
	"enumMember",
	"number",
	"type",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// document is the server's view of one open file.
type document struct {
	text        string
	result      *parser.ParseResult // nil when lexing failed
	diagnostics []errors.CompilerError
	symbols     *semantic.SymbolTable
}

// Handler implements the LSP server handlers for rule files
type Handler struct {
	mu        sync.RWMutex
	documents map[string]*document
	options   semantic.Options
}

// NewHandler creates a handler whose checker runs with options.
func NewHandler(options semantic.Options) *Handler {
	return &Handler{
		documents: make(map[string]*document),
		options:   options,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	doc := h.update(path, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, ConvertCompilerErrors(doc.diagnostics))
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Only full-document sync is advertised, so the last change holds the text.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	text, ok := latestText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no usable content change for %s", params.TextDocument.URI)
	}

	doc := h.update(path, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, ConvertCompilerErrors(doc.diagnostics))
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.documents, path)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers keywords, actions, duration units and the
// field paths already used in the document.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	doc := h.documents[path]
	h.mu.RUnlock()

	var fields []string
	if doc != nil && doc.symbols != nil {
		fields = doc.symbols.Names(semantic.SymbolField)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(semantic.NewAnalyzer(h.options).KnownUnits(), fields),
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("semantic tokens for %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	doc, err := h.getOrLoad(ctx, path, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	var tokens []SemanticToken
	if doc.result != nil {
		tokens = collectSemanticTokens(doc.result.Tokens)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens),
	}, nil
}

// Diagnostics returns the current diagnostics of an open document.
func (h *Handler) Diagnostics(uri protocol.DocumentUri) []errors.CompilerError {
	path, err := uriToPath(uri)
	if err != nil {
		return nil
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if doc, ok := h.documents[path]; ok {
		return doc.diagnostics
	}
	return nil
}

// getOrLoad returns the open document at path, reading it from disk when the
// client asks about a file it never opened.
func (h *Handler) getOrLoad(ctx *glsp.Context, path string, uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	doc, ok := h.documents[path]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc = h.update(path, string(content))
	sendDiagnosticNotification(ctx, uri, ConvertCompilerErrors(doc.diagnostics))
	return doc, nil
}

func (h *Handler) update(path, text string) *document {
	doc := analyze(text, h.options)

	h.mu.Lock()
	h.documents[path] = doc
	h.mu.Unlock()

	return doc
}

// analyze lexes, parses and checks text. Lexer and parser errors stop the
// pipeline, so at most one of them is reported.
func analyze(text string, options semantic.Options) *document {
	doc := &document{text: text}

	result, err := parser.ParseSource(text)
	doc.result = result
	if err != nil {
		if diag, ok := errors.FromError(err); ok {
			doc.diagnostics = []errors.CompilerError{diag}
		}
		return doc
	}

	analyzer := semantic.NewAnalyzer(options)
	doc.diagnostics = analyzer.Analyze(result.Program, result.Positions)
	doc.symbols = analyzer.Symbols()
	return doc
}

func latestText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		case *protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
