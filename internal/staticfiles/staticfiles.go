// Package staticfiles is the thing the access gate stands in front of:
// a small read-only file server for the pre-rendered pages. It knows
// nothing about sessions, on purpose.
package staticfiles

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/cespare/xxhash/v2"
)

type (
	Server struct {
		root  string
		cache *bigcache.BigCache
	}
)

// New serves files below root. Contents are cached in memory for a few
// minutes, the pages are tiny and mostly static so serving slightly
// stale bytes is fine.
func New(root string) *Server {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(10 * time.Minute))
	return &Server{root: root, cache: cache}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	name, ok := s.resolve(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	content, err := s.load(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	etag := fmt.Sprintf(`"%x"`, xxhash.Sum64(content))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	ctype := mime.TypeByExtension(path.Ext(name))
	if ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		w.Write(content)
	}
}

// resolve maps a request path to a relative file name: "/" becomes
// index.html, extensionless paths get ".html" appended (so /login
// serves login.html), and anything trying to climb out of the root is
// refused.
func (s *Server) resolve(reqPath string) (string, bool) {
	name := path.Clean("/" + reqPath)
	if name == "/" {
		name = "/index.html"
	}
	if strings.Contains(name, "..") {
		return "", false
	}
	if path.Ext(name) == "" {
		name += ".html"
	}
	return strings.TrimPrefix(name, "/"), true
}

func (s *Server) load(name string) ([]byte, error) {
	if content, err := s.cache.Get(name); err == nil {
		return content, nil
	}
	content, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, content)
	return content, nil
}
