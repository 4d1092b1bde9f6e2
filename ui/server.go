// Package ui serves a web page for searching methods by signature.
package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/typefind/typesig"
)

//go:embed static templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("typefind.ui")

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// MaxResults is the number of records shown when no limit is requested.
const MaxResults = 50

// Searcher finds method records, e.g. an *index.Index.
type Searcher interface {
	Search(query string, limit int) []typesig.Record
}

type Server struct {
	searcher   Searcher
	staticFS   fs.FS
	templateFS fs.FS
	funcMap    template.FuncMap
	mux        *http.ServeMux
}

// NewServer serves pages from the embedded templates. Files under
// ui/templates and ui/static in the working directory take precedence, so
// that pages can be edited without rebuilding.
func NewServer(searcher Searcher) (*Server, error) {
	s := &Server{
		searcher:   searcher,
		staticFS:   overlayFS("ui/static", mustSub(embeddedFS, "static")),
		templateFS: overlayFS("ui/templates", mustSub(embeddedFS, "templates")),
		funcMap: template.FuncMap{
			"arrow": arrow,
			"add": func(a, b int) int {
				return a + b
			},
		},
		mux: http.NewServeMux(),
	}

	tmpl, err := s.parseTemplates()
	if err != nil {
		return nil, err
	}
	for _, name := range pages {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("parse templates: missing %s", name)
		}
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))
	s.mux.HandleFunc("GET /search", s.handleSearch)
	s.mux.HandleFunc("GET /q/{query...}", s.handleQuery)
	s.mux.HandleFunc("GET /api/search", s.handleAPISearch)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

var pages = []string{"layout.html", "index.html", "results.html"}

func (s *Server) parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := s.parseTemplates()
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Errorf("render %s: %s", name, err)
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", resultData{})
}

// handleSearch turns the search form into a bookmarkable /q/ URL.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/q/"+url.PathEscape(q), http.StatusSeeOther)
}

type resultData struct {
	Query   string
	Records []typesig.Record
	HasMore bool
}

func (s *Server) search(query string, limit int) resultData {
	records := s.searcher.Search(query, limit+1)
	data := resultData{Query: query, Records: records}
	if len(records) > limit {
		data.Records = records[:limit]
		data.HasMore = true
	}
	return data
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	s.render(w, "results.html", s.search(r.PathValue("query"), MaxResults))
}

type searchParams struct {
	Query string `schema:"q"`
	Limit int    `schema:"limit" validate:"omitempty,min=1,max=1000"`
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	var params searchParams
	if err := schemaDecoder.Decode(&params, r.URL.Query()); err != nil {
		http.Error(w, "invalid query: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(params); err != nil {
		http.Error(w, "invalid query: "+err.Error(), http.StatusBadRequest)
		return
	}
	if params.Limit == 0 {
		params.Limit = MaxResults
	}

	data := s.search(params.Query, params.Limit)
	if data.Records == nil {
		data.Records = []typesig.Record{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Query   string           `json:"query"`
		Records []typesig.Record `json:"records"`
		HasMore bool             `json:"hasMore"`
	}{data.Query, data.Records, data.HasMore})
}

// arrow renders a signature with its arrows as symbols.
func arrow(signature string) template.HTML {
	parts := strings.Split(signature, " -> ")
	for i, p := range parts {
		parts[i] = template.HTMLEscapeString(p)
	}
	return template.HTML(strings.Join(parts, ` <span class="arrow">&rarr;</span> `))
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlay struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlay{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlay) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlay) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)
	for _, fsys := range []fs.FS{o.secondary, o.primary} {
		if list, err := fs.ReadDir(fsys, name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	slices.SortFunc(result, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result, nil
}
