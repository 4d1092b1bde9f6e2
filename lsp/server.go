// Package lsp serves method signature search over the Language Server
// Protocol. Clients query it through workspace/symbol, for example with
// "List<E> -> int".
package lsp

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/typefind/index"
	"github.com/dhamidi/typefind/typesig"
)

const lsName = "typefind"

// MaxSymbols caps the number of results of one workspace/symbol request.
const MaxSymbols = 200

var log = commonlog.GetLogger("typefind.lsp")

// Loader builds a fresh index, e.g. by describing every method on a class
// path.
type Loader func(ctx context.Context) (*index.Index, error)

type Server struct {
	load    Loader
	watched []string
	handler protocol.Handler
	server  *server.Server
	version string
	watcher *FileWatcher

	mu    sync.RWMutex
	index *index.Index
}

// NewServer returns a server that builds its index with load once the
// client is initialized, and again whenever one of the watched files
// changes.
func NewServer(version string, load Loader, watched ...string) *Server {
	ls := &Server{
		load:    load,
		watched: watched,
		version: version,
		index:   index.New(),
	}

	ls.handler = protocol.Handler{
		Initialize:      ls.initialize,
		Initialized:     ls.initialized,
		Shutdown:        ls.shutdown,
		SetTrace:        ls.setTrace,
		WorkspaceSymbol: ls.workspaceSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) RunTCP(address string) error {
	return ls.server.RunTCP(address)
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.Reload(context.Background()); err != nil {
		return err
	}
	ls.stopWatching()
	if len(ls.watched) > 0 {
		ls.watcher = NewFileWatcher(ls.watched, func() {
			if err := ls.Reload(context.Background()); err != nil {
				log.Errorf("reloading index: %s", err)
			}
		})
		ls.watcher.Start()
	}
	return nil
}

// Reload replaces the index with a freshly loaded one. Searches keep using
// the old index until the new one is complete.
func (ls *Server) Reload(ctx context.Context) error {
	ix, err := ls.load(ctx)
	if err != nil {
		return err
	}
	ls.mu.Lock()
	ls.index = ix
	ls.mu.Unlock()
	log.Infof("indexed %d methods", ix.Len())
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	ls.stopWatching()
	return nil
}

func (ls *Server) stopWatching() {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) workspaceSymbol(ctx *glsp.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	ls.mu.RLock()
	ix := ls.index
	ls.mu.RUnlock()

	records := ix.Search(params.Query, MaxSymbols)
	symbols := make([]protocol.SymbolInformation, len(records))
	for i, r := range records {
		symbols[i] = symbolInformation(r)
	}
	return symbols, nil
}

// symbolInformation names the symbol by its simplified signature so that
// clients list "name: String -> int" lines.
func symbolInformation(r typesig.Record) protocol.SymbolInformation {
	container := r.DeclaringType
	si := protocol.SymbolInformation{
		Name:          r.Name + ": " + r.SimpleForm,
		Kind:          protocol.SymbolKindMethod,
		Location:      protocol.Location{URI: recordURI(r)},
		ContainerName: &container,
	}
	if r.Deprecated {
		deprecated := true
		si.Tags = []protocol.SymbolTag{protocol.SymbolTagDeprecated}
		si.Deprecated = &deprecated
	}
	return si
}

// recordURI points at a method as typefind:///<class>#<method>, with type
// arguments dropped from the class name.
func recordURI(r typesig.Record) protocol.DocumentUri {
	class, _, _ := strings.Cut(r.DeclaringType, "<")
	u := url.URL{Scheme: lsName, Path: "/" + class, Fragment: r.Name}
	return u.String()
}
