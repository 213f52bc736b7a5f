package probe

import (
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Prober answers best-effort existence checks against candidate asset
// URLs. Lookups are memoized with a TTL so repeated derivations within one
// run hit the network once per URL.
type Prober struct {
	client *http.Client
	cache  *cache.Cache
}

func New() *Prober {
	return &Prober{
		client: &http.Client{Timeout: time.Second * 10},
		cache:  cache.New(time.Minute*5, time.Minute),
	}
}

// NewWithClient is used by tests to point the prober at a stub server.
func NewWithClient(client *http.Client) *Prober {
	p := New()
	p.client = client
	return p
}

// FirstAvailable probes every candidate concurrently and joins on all of
// them, then returns the earliest candidate that answered successfully.
// Only which probes succeeded is observed, never completion order, so the
// unordered fan-out is safe. Returns empty when nothing answered.
func (p *Prober) FirstAvailable(candidates []string) string {
	available := make([]bool, len(candidates))

	wg := sync.WaitGroup{}
	for i, url := range candidates {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			available[i] = p.Exists(url)
		}(i, url)
	}
	wg.Wait()

	for i, ok := range available {
		if ok {
			return candidates[i]
		}
	}
	return ""
}

// Exists reports whether a HEAD request against the URL answers with a
// success status. Network errors count as absent.
func (p *Prober) Exists(url string) bool {
	if result, ok := p.cache.Get(url); ok {
		return result.(bool)
	}

	exists := false
	resp, err := p.client.Head(url)
	if err == nil {
		resp.Body.Close()
		exists = resp.StatusCode >= 200 && resp.StatusCode <= 299
	}

	p.cache.Set(url, exists, cache.DefaultExpiration)
	return exists
}
