// Package middleware contains http middlewares of the agent API.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultCacheSize = 256

type response struct {
	code   int
	header http.Header
	body   []byte
}

// Cache keeps successful responses by request uri for ttl.
type Cache struct {
	ttl time.Duration
	lru *expirable.LRU[string, response]
}

// NewCache returns cache. Zero ttl disables caching.
func NewCache(ttl time.Duration) *Cache {
	c := &Cache{ttl: ttl}
	if ttl > 0 {
		c.lru = expirable.NewLRU[string, response](defaultCacheSize, nil, ttl)
	}

	return c
}

// Purge drops every cached response.
func (c *Cache) Purge() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

// Cached ...
func (c *Cache) Cached(handler http.HandlerFunc) http.HandlerFunc {
	if c.lru == nil {
		return handler
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if v, ok := c.lru.Get(r.RequestURI); ok {
			write(w, v)
			return
		}

		rec := httptest.NewRecorder()
		handler(rec, r)

		v := response{
			code:   rec.Code,
			header: rec.Header().Clone(),
			body:   rec.Body.Bytes(),
		}

		if v.code == http.StatusOK {
			c.lru.Add(r.RequestURI, v)
		}

		write(w, v)
	}
}

func write(w http.ResponseWriter, v response) {
	for k, h := range v.header {
		w.Header()[k] = h
	}

	w.WriteHeader(v.code)
	_, _ = w.Write(v.body)
}
