package handlers

import (
	"net/http"

	"github.com/JunoAX/cafe-fausse/internal/content"
	"github.com/JunoAX/cafe-fausse/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// page fills the fields every template reads from the layout
func page(c *gin.Context, active, title string, data gin.H) gin.H {
	h := gin.H{
		"Active": active,
		"Title":  title,
		"Info":   content.Info(),
		"CSRF":   csrf.TemplateField(c.Request),
		"Flash":  nil,
	}
	if msg, ok := middleware.GetFlash(c); ok {
		h["Flash"] = &msg
	}
	for k, v := range data {
		h[k] = v
	}
	return h
}

// renderError shows the error page with a visitor-facing message
func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error", page(c, "", http.StatusText(status), gin.H{
		"Status":  status,
		"Message": message,
	}))
}

// NotFound renders the 404 page for unknown routes
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "We couldn't find that page.")
}

// Home renders the landing page with an empty newsletter form
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", page(c, "home", "", gin.H{
		"Form":  newsletterForm{},
		"Error": "",
	}))
}

// Menu renders the static menu
func Menu(c *gin.Context) {
	c.HTML(http.StatusOK, "menu", page(c, "menu", "Menu", gin.H{
		"Menu": content.Menu(),
	}))
}

// About renders the pre-rendered About copy
func About(body any) gin.HandlerFunc {
	founders := content.Founders()
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "about", page(c, "about", "About", gin.H{
			"AboutHTML": body,
			"Founders":  founders,
		}))
	}
}
