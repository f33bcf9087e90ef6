package api

import (
	"net/http"
	"net/url"
	"sort"
	"strings"

	"postsdb/pkg/api/handlers"
	"postsdb/pkg/httpx"
	"postsdb/pkg/store"
)

// actionPrefix is the fixed RPC path prefix. The action identifier is the
// remainder of the path: /posts.getById → getById. Matching is exact and
// case-sensitive; no trailing-slash normalization.
const actionPrefix = "/posts."

type actionFunc func(w httpx.ResponseWriter, q url.Values)

// API maps action identifiers to their handlers. The table is built once at
// startup and never changes.
type API struct {
	actions map[string]actionFunc
}

// New builds the action table over the given store.
func New(st *store.Store) *API {
	p := handlers.NewPosts(st)
	return &API{actions: map[string]actionFunc{
		"list":    p.List,
		"getById": p.GetByID,
		"create":  p.Create,
		"edit":    p.Edit,
		"delete":  p.Delete,
	}}
}

// Handler resolves the inbound action identifier and invokes its handler
// with the parsed query parameters. Paths outside the prefix and unknown
// identifiers get 404 with an empty body, same status as a missing record
// but raised here before any handler runs.
func (a *API) Handler() httpx.HandlerFunc {
	return func(w httpx.ResponseWriter, r *httpx.Request) {
		if !strings.HasPrefix(r.Path, actionPrefix) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		act, ok := a.actions[strings.TrimPrefix(r.Path, actionPrefix)]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		act(w, r.Query())
	}
}

// Actions returns the supported action identifiers, sorted, for the startup
// banner and docs.
func (a *API) Actions() []string {
	out := make([]string, 0, len(a.actions))
	for k := range a.actions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
