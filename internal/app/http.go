package app

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/valyala/fasthttp"

	"postsdb/pkg/httpx"
	"postsdb/pkg/logger"
	"postsdb/pkg/ratelimit"
	"postsdb/pkg/telemetry"
)

type serverHandles struct {
	std  *http.Server
	fast *fasthttp.Server
}

// chain assembles the request pipeline: rate limiting, then telemetry, then
// the action dispatcher. The chain is transport-agnostic; adapters bind it
// to the configured engine.
func (a *App) chain() httpx.HandlerFunc {
	h := a.api.Handler()
	h = telemetry.Middleware(h)
	h = ratelimit.Middleware(ratelimit.Config{
		RPS:   a.eff.Config.Security.RateLimit.RPS,
		Burst: a.eff.Config.Security.RateLimit.Burst,
	})(h)
	return h
}

// setupHTTPHandlers sets up all HTTP handlers on the provided mux.
func (a *App) setupHTTPHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", healthzHandler)
	mux.HandleFunc("/readyz", a.readyzHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/docs/", httpSwagger.Handler(httpSwagger.URL("/openapi.yaml")))
	mux.Handle("/openapi.yaml", http.FileServer(http.Dir("./docs")))
	mux.Handle("/", httpx.NetHTTPAdapter(a.chain()))
}

// healthzHandler handles the /healthz endpoint.
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// readyzHandler handles the /readyz endpoint. The store is in-memory and
// ready once constructed; the response carries its counters and the running
// version so ops can verify what binary is active.
func (a *App) readyzHandler(w http.ResponseWriter, r *http.Request) {
	ver := a.version
	if ver == "" {
		ver = "dev"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(struct {
		Status  string `json:"status"`
		Version string `json:"version"`
		Posts   int    `json:"posts"`
	}{Status: "ok", Version: ver, Posts: a.store.Stats().Active})
}

// startHTTP starts the configured engine in a goroutine and returns a
// channel that will contain any server error.
func (a *App) startHTTP() <-chan error {
	errCh := make(chan error, 1)
	cert := a.eff.Config.Server.TLS.CertFile
	key := a.eff.Config.Server.TLS.KeyFile

	if a.eff.Engine == "fasthttp" {
		// ops endpoints (/metrics, /docs) are net/http handlers; the
		// fasthttp engine serves the action API and health probe only
		logger.Warn("fasthttp_engine", "msg", "metrics and docs endpoints are only served by the nethttp engine")
		srv := &fasthttp.Server{Handler: a.fasthttpRouter()}
		if n := a.eff.Config.Server.MaxRequestBytes.Int64(); n > 0 {
			srv.MaxRequestBodySize = int(n)
		}
		a.servers.fast = srv
		go func() {
			if cert != "" && key != "" {
				errCh <- srv.ListenAndServeTLS(a.eff.Addr, cert, key)
			} else {
				errCh <- srv.ListenAndServe(a.eff.Addr)
			}
		}()
		return errCh
	}

	mux := http.NewServeMux()
	a.setupHTTPHandlers(mux)
	var handler http.Handler = mux
	if n := a.eff.Config.Server.MaxRequestBytes.Int64(); n > 0 {
		handler = http.MaxBytesHandler(mux, n)
	}
	a.servers.std = &http.Server{Addr: a.eff.Addr, Handler: handler}
	go func() {
		if cert != "" && key != "" {
			errCh <- a.servers.std.ListenAndServeTLS(cert, key)
		} else {
			errCh <- a.servers.std.ListenAndServe()
		}
	}()
	return errCh
}

// fasthttpRouter routes the health probe and hands everything else to the
// adapted request chain.
func (a *App) fasthttpRouter() fasthttp.RequestHandler {
	apiHandler := httpx.FastHTTPAdapter(a.chain())
	return func(ctx *fasthttp.RequestCtx) {
		if string(ctx.Path()) == "/healthz" {
			ctx.SetContentType("application/json")
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString(`{"status":"ok"}`)
			return
		}
		apiHandler(ctx)
	}
}

// stopHTTP drains in-flight requests within the given timeout.
func (a *App) stopHTTP(timeout time.Duration) {
	if a.servers.std != nil {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := a.servers.std.Shutdown(ctx); err != nil {
			logger.Warn("http_shutdown_error", "error", err)
		}
	}
	if a.servers.fast != nil {
		if err := a.servers.fast.Shutdown(); err != nil {
			logger.Warn("http_shutdown_error", "error", err)
		}
	}
}
