package main

import (
	"log"
	"os"

	"kaleido/internal/lsp"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "kaleido" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	kaleidoHandler := lsp.NewKaleidoHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     kaleidoHandler.Initialize,
		Initialized:                    kaleidoHandler.Initialized,
		Shutdown:                       kaleidoHandler.Shutdown,
		SetTrace:                       kaleidoHandler.SetTrace,
		TextDocumentDidOpen:            kaleidoHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           kaleidoHandler.TextDocumentDidClose,
		TextDocumentDidChange:          kaleidoHandler.TextDocumentDidChange,
		TextDocumentCompletion:         kaleidoHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: kaleidoHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Kaleido LSP server", version)

	// The editor talks to us over standard input/output
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Kaleido LSP server:", err)
		os.Exit(1)
	}
}
