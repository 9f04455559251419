package server

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JunoAX/cafe-fausse/internal/admin"
	"github.com/JunoAX/cafe-fausse/internal/content"
	"github.com/JunoAX/cafe-fausse/internal/flash"
	"github.com/JunoAX/cafe-fausse/internal/gallery"
	"github.com/JunoAX/cafe-fausse/internal/handlers"
	"github.com/JunoAX/cafe-fausse/internal/middleware"
	"github.com/JunoAX/cafe-fausse/internal/web"
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// CSRFFieldName is the hidden form field carrying the CSRF token
const CSRFFieldName = "csrf_token"

// Backend is everything the site asks of the restaurant API
type Backend interface {
	handlers.Subscriber
	handlers.ReservationCreator
	admin.Source
}

// Options wires the server's collaborators
type Options struct {
	Backend   Backend
	Gallery   *gallery.Index
	Flash     *flash.Service
	Logger    *slog.Logger
	Version   string
	AboutHTML template.HTML

	AssetsDir string
	AssetsURL string

	// ProxyURL enables /api/* forwarding when set
	ProxyURL       string
	ProxyTransport http.RoundTripper

	CSRFKey       []byte
	SecureCookies bool
	EnableTracing bool
}

// NewRouter builds the gin engine with templates, static files and routes
func NewRouter(opts Options) (*gin.Engine, error) {
	renderer, err := web.NewRenderer(opts.AssetsURL)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger.With("component", "http")))
	r.Use(middleware.Flash(opts.Flash, opts.SecureCookies, logger.With("component", "flash")))

	r.StaticFS("/static", http.FS(web.Static()))
	if opts.AssetsDir != "" {
		r.Static(opts.AssetsURL, opts.AssetsDir)
	}

	r.GET("/health", handlers.Health(opts.Version))
	r.GET("/version", handlers.Version(opts.Version))

	pageLogger := logger.With("component", "pages")
	r.GET("/", handlers.Home)
	r.POST("/newsletter", handlers.SubscribeNewsletter(opts.Backend, pageLogger))
	r.GET("/menu", handlers.Menu)
	r.GET("/about", handlers.About(opts.AboutHTML))
	r.GET("/reservations", handlers.ReservationsPage)
	r.POST("/reservations", handlers.CreateReservation(opts.Backend, pageLogger))
	r.GET("/gallery", handlers.Gallery(opts.Gallery))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.NoStore())
	{
		adminGroup.GET("", handlers.AdminDashboard(opts.Backend, logger.With("component", "admin")))
	}

	if opts.ProxyURL != "" {
		proxy, err := handlers.ProxyToBackend(opts.ProxyURL, opts.ProxyTransport, logger.With("component", "proxy"))
		if err != nil {
			return nil, fmt.Errorf("failed to create api proxy: %w", err)
		}
		r.Any("/api/*path", proxy)
	}

	r.NoRoute(handlers.NotFound)
	return r, nil
}

// NewHandler wraps the engine with CSRF protection and, when enabled,
// X-Ray tracing. The CSRF error page reuses the engine's renderer. /api/* bypasses CSRF since the backend owns those routes.
func NewHandler(engine *gin.Engine, opts Options) (http.Handler, error) {
	renderer, ok := engine.HTMLRender.(*web.Renderer)
	if !ok {
		return nil, fmt.Errorf("engine has no page renderer; build it with NewRouter")
	}

	protect := csrf.Protect(opts.CSRFKey,
		csrf.Secure(opts.SecureCookies),
		csrf.HttpOnly(true),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(CSRFFieldName),
		csrf.ErrorHandler(forbidden(renderer, opts.Logger)),
	)
	protected := protect(engine)

	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if opts.ProxyURL != "" && strings.HasPrefix(r.URL.Path, "/api/") {
			engine.ServeHTTP(w, r)
			return
		}
		if !opts.SecureCookies {
			r = csrf.PlaintextHTTPRequest(r)
		}
		protected.ServeHTTP(w, r)
	})

	if opts.EnableTracing {
		h = xray.Handler(xray.NewFixedSegmentNamer("cafe-fausse"), h)
	}
	return h, nil
}

func forbidden(renderer *web.Renderer, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warn("CSRF check failed", "path", r.URL.Path, "reason", csrf.FailureReason(r))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		err := renderer.Instance("error", gin.H{
			"Active":  "",
			"Title":   http.StatusText(http.StatusForbidden),
			"Info":    content.Info(),
			"Status":  http.StatusForbidden,
			"Message": "Your form session expired. Please go back, reload the page and try again.",
		}).Render(w)
		if err != nil {
			logger.Error("Failed to render CSRF error page", "error", err)
		}
	})
}
