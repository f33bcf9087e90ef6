package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fasthttp"
)

// Small readiness probe for a running postsdb instance; exits non-zero when
// the health endpoint is unreachable or unhealthy.
func main() {
	target := flag.String("url", "http://127.0.0.1:9999/healthz", "health endpoint to probe")
	timeout := flag.Duration("timeout", 2*time.Second, "probe timeout")
	flag.Parse()

	status, body, err := fasthttp.GetTimeout(nil, *target, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe failed: %v\n", err)
		os.Exit(1)
	}
	if status != fasthttp.StatusOK {
		fmt.Fprintf(os.Stderr, "unhealthy: status=%d body=%s\n", status, body)
		os.Exit(1)
	}
	fmt.Printf("ok: %s\n", body)
}
