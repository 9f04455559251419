package gallery

import (
	"net/url"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories is the filter value that shows every section
const AllCategories = "All"

// OtherCategory holds images with no folder after the anchor
const OtherCategory = "Other"

// DefaultOrder is the preferred category sequence
var DefaultOrder = []string{"Location", "Dishes", "Catering", "Behind The Scenes"}

var separatorRun = regexp.MustCompile(`[_-]+`)

// Options controls how entries are categorized and ordered
type Options struct {
	// Anchor is the path segment whose successor names the category
	Anchor string
	// Order lists categories that go first, in this order, when present
	Order []string
}

// Category is a gallery folder
type Category struct {
	Name  string
	Label string
}

// Item is one indexed image
type Item struct {
	Entry
	Category string
	Name     string
	Alt      string
}

// Section is a category with its images in display order
type Section struct {
	Category Category
	Items    []Item
}

// Index is the immutable, deterministic view of the gallery manifest
type Index struct {
	sections []Section
	byURL    map[string]Item
}

// Label turns a raw folder name into display text
func Label(raw string) string {
	return strings.TrimSpace(separatorRun.ReplaceAllString(decode(raw), " "))
}

// NewIndex groups entries into ordered categories. The same entries always
// yield the same index regardless of input order.
func NewIndex(entries []Entry, opts Options) *Index {
	anchor := opts.Anchor
	if anchor == "" {
		anchor = "cafe"
	}
	order := opts.Order
	if order == nil {
		order = DefaultOrder
	}

	grouped := make(map[string][]Item)
	for _, e := range entries {
		if e.URL == "" {
			continue
		}
		source := e.Path
		if source == "" {
			source = e.URL
		}
		category, name := classify(source, anchor)
		grouped[category] = append(grouped[category], Item{Entry: e, Category: category, Name: name})
	}

	idx := &Index{byURL: make(map[string]Item)}
	for _, name := range orderCategories(grouped, order) {
		items := grouped[name]
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Name != items[j].Name {
				return items[i].Name < items[j].Name
			}
			if items[i].Path != items[j].Path {
				return items[i].Path < items[j].Path
			}
			return items[i].URL < items[j].URL
		})

		category := Category{Name: name, Label: Label(name)}
		for i := range items {
			items[i].Alt = category.Label + " " + strconv.Itoa(i+1)
			if _, seen := idx.byURL[items[i].URL]; !seen {
				idx.byURL[items[i].URL] = items[i]
			}
		}
		idx.sections = append(idx.sections, Section{Category: category, Items: items})
	}
	return idx
}

// Categories returns the categories in display order, without "All"
func (idx *Index) Categories() []Category {
	categories := make([]Category, len(idx.sections))
	for i, s := range idx.sections {
		categories[i] = s.Category
	}
	return categories
}

// Sections returns what a filter selects. "All" or an empty filter yields
// every section. Any other value yields exactly one section, which has no
// items when the category does not exist.
func (idx *Index) Sections(filter string) []Section {
	if filter == "" || filter == AllCategories {
		sections := make([]Section, len(idx.sections))
		copy(sections, idx.sections)
		return sections
	}
	for _, s := range idx.sections {
		if s.Category.Name == filter {
			return []Section{s}
		}
	}
	return []Section{{Category: Category{Name: filter, Label: Label(filter)}}}
}

// Lookup finds an indexed image by URL
func (idx *Index) Lookup(u string) (Item, bool) {
	item, ok := idx.byURL[u]
	return item, ok
}

// Len returns the number of indexed images
func (idx *Index) Len() int {
	n := 0
	for _, s := range idx.sections {
		n += len(s.Items)
	}
	return n
}

func classify(p, anchor string) (category, name string) {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	parts := strings.Split(p, "/")
	file := parts[len(parts)-1]
	name = strings.TrimSuffix(decode(file), path.Ext(decode(file)))

	category = OtherCategory
	for i, part := range parts[:len(parts)-1] {
		if part == anchor && i+1 < len(parts)-1 && parts[i+1] != "" {
			category = decode(parts[i+1])
			break
		}
	}
	return category, name
}

func orderCategories(grouped map[string][]Item, order []string) []string {
	names := make([]string, 0, len(grouped))
	preferred := make(map[string]bool, len(order))
	for _, name := range order {
		if _, ok := grouped[name]; ok && !preferred[name] {
			names = append(names, name)
		}
		preferred[name] = true
	}

	var rest []string
	for name := range grouped {
		if !preferred[name] {
			rest = append(rest, name)
		}
	}

	col := collate.New(language.English)
	sort.Slice(rest, func(i, j int) bool {
		if c := col.CompareString(Label(rest[i]), Label(rest[j])); c != 0 {
			return c < 0
		}
		return rest[i] < rest[j]
	})
	return append(names, rest...)
}

func decode(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
