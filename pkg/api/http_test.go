package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"postsdb/pkg/api"
	"postsdb/pkg/httpx"
	"postsdb/pkg/logger"
	"postsdb/pkg/store"
)

type post struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Created int64  `json:"created"`
	Removed bool   `json:"removed"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger.Init()
	srv := httptest.NewServer(httpx.NetHTTPAdapter(api.New(store.New()).Handler()))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, rawURL string) *http.Response {
	t.Helper()
	res, err := http.Get(rawURL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return res
}

func decodePost(t *testing.T, res *http.Response) post {
	t.Helper()
	defer res.Body.Close()
	var p post
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	return p
}

func decodeList(t *testing.T, res *http.Response) []post {
	t.Helper()
	defer res.Body.Close()
	var out []post
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return out
}

func create(t *testing.T, srv *httptest.Server, content string) post {
	t.Helper()
	res := get(t, srv.URL+"/posts.create?content="+url.QueryEscape(content))
	if res.StatusCode != 200 {
		t.Fatalf("create failed: %v", res.Status)
	}
	return decodePost(t, res)
}

func TestCreateAndListOrder(t *testing.T) {
	srv := newServer(t)

	p1 := create(t, srv, "hello")
	if p1.ID != 1 || p1.Content != "hello" || p1.Removed {
		t.Fatalf("unexpected first post: %+v", p1)
	}
	p2 := create(t, srv, "world")
	if p2.ID != 2 {
		t.Fatalf("expected id 2, got %d", p2.ID)
	}

	res := get(t, srv.URL+"/posts.list")
	if res.StatusCode != 200 {
		t.Fatalf("list failed: %v", res.Status)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	out := decodeList(t, res)
	if len(out) != 2 || out[0].ID != 2 || out[1].ID != 1 {
		t.Fatalf("expected [2 1], got %+v", out)
	}
}

func TestGetByIDRoundTrip(t *testing.T) {
	srv := newServer(t)
	created := create(t, srv, "hello")

	res := get(t, srv.URL+"/posts.getById?id=1")
	if res.StatusCode != 200 {
		t.Fatalf("getById failed: %v", res.Status)
	}
	got := decodePost(t, res)
	if got.Content != created.Content || got.Created != created.Created {
		t.Fatalf("round-trip mismatch: created=%+v got=%+v", created, got)
	}
}

func TestEditKeepsOrder(t *testing.T) {
	srv := newServer(t)
	create(t, srv, "hello")
	create(t, srv, "world")

	res := get(t, srv.URL+"/posts.edit?id=1&content=bye")
	if res.StatusCode != 200 {
		t.Fatalf("edit failed: %v", res.Status)
	}
	if p := decodePost(t, res); p.Content != "bye" {
		t.Fatalf("expected edited content, got %+v", p)
	}

	out := decodeList(t, get(t, srv.URL+"/posts.list"))
	if len(out) != 2 || out[0].ID != 2 || out[1].ID != 1 || out[1].Content != "bye" {
		t.Fatalf("unexpected list after edit: %+v", out)
	}
}

func TestDeleteHidesPost(t *testing.T) {
	srv := newServer(t)
	create(t, srv, "hello")
	create(t, srv, "world")

	res := get(t, srv.URL+"/posts.delete?id=2")
	if res.StatusCode != 200 {
		t.Fatalf("delete failed: %v", res.Status)
	}
	if p := decodePost(t, res); !p.Removed {
		t.Fatalf("expected removed=true, got %+v", p)
	}

	out := decodeList(t, get(t, srv.URL+"/posts.list"))
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("expected only post 1, got %+v", out)
	}

	if res := get(t, srv.URL+"/posts.getById?id=2"); res.StatusCode != 404 {
		t.Fatalf("expected 404 for deleted post, got %v", res.Status)
	}
	if res := get(t, srv.URL+"/posts.delete?id=2"); res.StatusCode != 404 {
		t.Fatalf("expected 404 for second delete, got %v", res.Status)
	}
}

func TestValidationShortCircuits(t *testing.T) {
	srv := newServer(t)

	// rejected creates must not allocate ids
	if res := get(t, srv.URL+"/posts.create"); res.StatusCode != 400 {
		t.Fatalf("expected 400 for missing content, got %v", res.Status)
	}
	if res := get(t, srv.URL+"/posts.create?content="); res.StatusCode != 400 {
		t.Fatalf("expected 400 for empty content, got %v", res.Status)
	}
	if p := create(t, srv, "first"); p.ID != 1 {
		t.Fatalf("expected no id gap, got id %d", p.ID)
	}

	// edit with valid id but missing content fails without mutating
	if res := get(t, srv.URL+"/posts.edit?id=1"); res.StatusCode != 400 {
		t.Fatalf("expected 400 for missing content, got %v", res.Status)
	}
	got := decodePost(t, get(t, srv.URL+"/posts.getById?id=1"))
	if got.Content != "first" {
		t.Fatalf("content mutated by rejected edit: %+v", got)
	}

	// id is validated before content
	if res := get(t, srv.URL+"/posts.edit?content=x"); res.StatusCode != 400 {
		t.Fatalf("expected 400 for missing id, got %v", res.Status)
	}
}

func TestErrorStatuses(t *testing.T) {
	srv := newServer(t)
	create(t, srv, "hello")

	cases := []struct {
		path string
		want int
	}{
		{"/posts.getById?id=999", 404},
		{"/posts.getById?id=abc", 400},
		{"/posts.getById", 400},
		{"/posts.getById?id=1.5", 404},
		{"/posts.unknown", 404},
		{"/posts.List", 404}, // identifiers are case-sensitive
		{"/other", 404},
	}
	for _, c := range cases {
		res := get(t, srv.URL+c.path)
		if res.StatusCode != c.want {
			t.Fatalf("%s: expected %d, got %v", c.path, c.want, res.Status)
		}
		b, _ := io.ReadAll(res.Body)
		res.Body.Close()
		if len(b) != 0 {
			t.Fatalf("%s: expected empty error body, got %q", c.path, b)
		}
	}
}
