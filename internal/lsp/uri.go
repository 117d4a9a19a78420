package lsp

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// uriToPath maps a file:// URI (or a bare path) to an absolute local path.
// Buffers with any other scheme, such as untitled:, have no path.
func uriToPath(uri string) string {
	u, err := url.Parse(uri)
	if uri == "" || err != nil {
		return ""
	}
	var p string
	switch u.Scheme {
	case "file":
		p = u.Path
	case "":
		p, _ = url.PathUnescape(uri)
	default:
		return ""
	}
	// file:///C:/x arrives as /C:/x
	if runtime.GOOS == "windows" && len(p) > 2 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	abs, err := filepath.Abs(filepath.FromSlash(p))
	if err != nil {
		return filepath.FromSlash(p)
	}
	return abs
}

func pathToURI(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	return (&url.URL{Scheme: "file", Path: slashed}).String()
}

// displayName is the path of a document when it has one, else its URI.
func displayName(uri string) string {
	if p := uriToPath(uri); p != "" {
		return p
	}
	return uri
}
