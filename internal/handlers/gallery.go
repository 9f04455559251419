package handlers

import (
	"net/http"
	"net/url"

	"github.com/JunoAX/cafe-fausse/internal/gallery"
	"github.com/gin-gonic/gin"
)

type galleryChip struct {
	Label  string
	Href   string
	Active bool
}

// Gallery renders the image grid. ?category= filters to one category and
// ?preview= opens the lightbox for an indexed image URL.
func Gallery(index *gallery.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := c.DefaultQuery("category", gallery.AllCategories)
		if filter == "" {
			filter = gallery.AllCategories
		}

		chips := []galleryChip{{
			Label:  gallery.AllCategories,
			Href:   galleryHref(gallery.AllCategories, ""),
			Active: filter == gallery.AllCategories,
		}}
		for _, category := range index.Categories() {
			chips = append(chips, galleryChip{
				Label:  category.Label,
				Href:   galleryHref(category.Name, ""),
				Active: filter == category.Name,
			})
		}

		var preview *gallery.Item
		if u := c.Query("preview"); u != "" {
			if item, ok := index.Lookup(u); ok {
				preview = &item
			}
		}

		c.HTML(http.StatusOK, "gallery", page(c, "gallery", "Gallery", gin.H{
			"Chips":        chips,
			"Filter":       filter,
			"Sections":     index.Sections(filter),
			"ShowHeadings": filter == gallery.AllCategories,
			"Preview":      preview,
			"CloseHref":    galleryHref(filter, ""),
		}))
	}
}

func galleryHref(category, preview string) string {
	q := url.Values{}
	if category != "" && category != gallery.AllCategories {
		q.Set("category", category)
	}
	if preview != "" {
		q.Set("preview", preview)
	}
	if len(q) == 0 {
		return "/gallery"
	}
	return "/gallery?" + q.Encode()
}
