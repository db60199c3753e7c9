package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"kaleido/internal/ast"
	"kaleido/internal/parser"
)

// The set of semantic token types this server reports, in legend order.
var SemanticTokenTypes = []string{
	"function",
	"variable",
	"number",
	"keyword",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

// KaleidoHandler implements the LSP server handlers for Kaleido
type KaleidoHandler struct {
	mu       sync.RWMutex
	content  map[string]string
	programs map[string]*ast.Program
}

func NewKaleidoHandler() *KaleidoHandler {
	return &KaleidoHandler{
		content:  make(map[string]string),
		programs: make(map[string]*ast.Program),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *KaleidoHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
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

func (h *KaleidoHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Kaleido LSP Initialized")
	return nil
}

func (h *KaleidoHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Kaleido LSP Shutdown")
	return nil
}

func (h *KaleidoHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentCompletion offers the function names visible in the
// document: externs and definitions, but not the anonymous wrappers.
func (h *KaleidoHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	program := h.programs[path]
	h.mu.RUnlock()

	items := []protocol.CompletionItem{}
	kind := protocol.CompletionItemKindFunction

	if program != nil {
		seen := make(map[string]bool)
		for _, item := range program.Items {
			var proto *ast.Prototype
			switch v := item.(type) {
			case *ast.Prototype:
				proto = v
			case *ast.Function:
				proto = v.Proto
			}

			if proto == nil || proto.Name == ast.AnonExprName || seen[proto.Name] {
				continue
			}
			seen[proto.Name] = true

			items = append(items, protocol.CompletionItem{
				Label: proto.Name,
				Kind:  &kind,
			})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *KaleidoHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateProgram(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}

	if diagnostics != nil {
		sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	}

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *KaleidoHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.programs, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *KaleidoHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateProgram(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}

	if diagnostics != nil {
		sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	}

	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *KaleidoHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	program, ok := h.programs[path]
	h.mu.RUnlock()

	if !ok {
		diagnostics, err := h.updateProgram(params.TextDocument.URI)
		if err != nil {
			return nil, err
		}

		h.mu.RLock()
		program = h.programs[path]
		h.mu.RUnlock()

		if diagnostics != nil {
			sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
		}
	}

	tokens := collectSemanticTokens(program)

	// Encode tokens into LSP wire format (delta-line, delta-start compression)
	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// updateProgram reparses a document and returns the diagnostics to publish.
// The (possibly partial) program is cached even when the parse reported
// errors, so semantic tokens keep working on the healthy constructs.
func (h *KaleidoHandler) updateProgram(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	program, parseErrors, scanErrors := parser.ParseSource(path, string(content))

	h.mu.Lock()
	h.content[path] = string(content)
	h.programs[path] = program
	h.mu.Unlock()

	diagnostics := ConvertScanErrors(scanErrors)
	diagnostics = append(diagnostics, ConvertParseErrors(parseErrors)...)
	return diagnostics, nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx.Notify == nil {
		return
	}

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
