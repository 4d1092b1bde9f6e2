// Package index keeps method records in memory and searches them by their
// simplified signature.
package index

import (
	"cmp"
	"context"
	"iter"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/typefind/notation"
	"github.com/dhamidi/typefind/typesig"
)

var log = commonlog.GetLogger("typefind.index")

// BatchSize is the number of records Load adds per batch.
const BatchSize = 1000

type entry struct {
	record typesig.Record
	simple string
	shape  string
	name   string
}

// Index is safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	entries []entry
}

func New() *Index {
	return &Index{}
}

func (ix *Index) Add(records ...typesig.Record) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for _, r := range records {
		shape, err := notation.Shape(r.SimpleForm)
		if err != nil {
			log.Debugf("no shape for %s: %s", r.SimpleForm, err)
		}
		ix.entries = append(ix.entries, entry{
			record: r,
			simple: normalize(r.SimpleForm),
			shape:  shape,
			name:   normalize(r.Name),
		})
	}
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Stats reports the outcome of Load.
type Stats struct {
	Batches int
	Indexed int
	Failed  int
}

// Load adds every described method in batches of BatchSize. Methods that
// could not be described are counted as failed and skipped. Load stops
// between batches when ctx is done.
func (ix *Index) Load(ctx context.Context, methods iter.Seq2[typesig.MethodDescriptor, error]) (Stats, error) {
	var stats Stats
	batch := make([]typesig.Record, 0, BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		ix.Add(batch...)
		stats.Batches++
		stats.Indexed += len(batch)
		log.Infof("batch %d: %d records, %d indexed so far", stats.Batches, len(batch), stats.Indexed)
		batch = batch[:0]
	}

	for md, err := range methods {
		if err != nil {
			stats.Failed++
			log.Debugf("skipping method: %s", err)
			continue
		}
		batch = append(batch, md.Record())
		if len(batch) == BatchSize {
			flush()
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
	}
	flush()
	return stats, nil
}

// Search returns up to limit records whose simplified signature or method
// name contains query. Whitespace is ignored and letters match regardless
// of case. Shorter signatures come first, ties are broken by the full form.
// A limit of zero or less returns every match.
//
// A query naming type variables also matches signatures that use other
// names for them, so "(List<A>, (A -> B))" finds "(List<T>, (T -> R)) ->
// List<R>". Variables are numbered from the start of the query and of the
// signature, so such queries should start where the signature starts.
func (ix *Index) Search(query string, limit int) []typesig.Record {
	q := normalize(query)
	if q == "" {
		return nil
	}
	shape, err := notation.Shape(query)
	if err != nil || !strings.Contains(shape, "%") {
		shape = ""
	}

	ix.mu.RLock()
	var out []typesig.Record
	for _, e := range ix.entries {
		if strings.Contains(e.simple, q) || strings.Contains(e.name, q) ||
			(shape != "" && strings.Contains(e.shape, shape)) {
			out = append(out, e.record)
		}
	}
	ix.mu.RUnlock()

	slices.SortFunc(out, func(a, b typesig.Record) int {
		return cmp.Or(
			cmp.Compare(len(a.SimpleForm), len(b.SimpleForm)),
			strings.Compare(a.FullForm, b.FullForm),
		)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func normalize(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
