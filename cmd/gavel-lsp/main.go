package main

import (
	"flag"
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"gavel/internal/config"
	"gavel/internal/lsp"
	"gavel/internal/semantic"
)

const lsName = "gavel" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	cfgFile := flag.String("config", "", "config file path (default "+config.DefaultFileName+")")
	verbosity := flag.Int("verbosity", 1, "log verbosity")
	flag.Parse()

	// Logs go to stderr; stdout carries the protocol.
	commonlog.Configure(*verbosity, nil)

	cfg, err := config.LoadWithEnvOverrides(*cfgFile)
	if err != nil {
		log.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	gavelHandler := lsp.NewHandler(semantic.Options{
		Units:            cfg.Units,
		WarningsAsErrors: cfg.WarningsAsErrors,
	})

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     gavelHandler.Initialize,
		Initialized:                    gavelHandler.Initialized,
		Shutdown:                       gavelHandler.Shutdown,
		SetTrace:                       gavelHandler.SetTrace,
		TextDocumentDidOpen:            gavelHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           gavelHandler.TextDocumentDidClose,
		TextDocumentDidChange:          gavelHandler.TextDocumentDidChange,
		TextDocumentCompletion:         gavelHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: gavelHandler.TextDocumentSemanticTokensFull,
	}

	// - name: the language server name (shown to clients)
	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting gavel LSP server %s...", version)

	err = s.RunStdio()
	if err != nil {
		log.Println("Error starting gavel LSP server:", err)
		os.Exit(1)
	}
}
