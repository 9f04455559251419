package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/JunoAX/cafe-fausse/internal/api"
	"github.com/gin-gonic/gin"
)

// ProxyToBackend creates a reverse proxy handler that forwards /api/* to the
// backend base URL so browsers can reach it same-origin. The admin token is
// never added and any client-supplied one is stripped.
func ProxyToBackend(baseURL string, transport http.RoundTripper, logger *slog.Logger) (gin.HandlerFunc, error) {
	target, err := url.Parse(baseURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q", baseURL)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	if transport != nil {
		proxy.Transport = transport
	}

	originalDirector := proxy.Director
	proxy.Director = func(req *http.Request) {
		originalDirector(req)
		req.Host = target.Host
		req.Header.Del(api.AdminTokenHeader)
		logger.Debug("Proxying to backend", "method", req.Method, "path", req.URL.Path)
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("Proxy error", "method", r.Method, "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"error": "Backend service unavailable"}`)
	}

	return func(c *gin.Context) {
		req := c.Request.Clone(c.Request.Context())
		req.URL.Path = "/" + strings.TrimPrefix(c.Param("path"), "/")
		req.URL.RawPath = ""
		proxy.ServeHTTP(c.Writer, req)
	}, nil
}
