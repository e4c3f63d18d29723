package handlers

import (
	"sort"

	"legalpages/pages"
)

// Kind selects how a route produces its response
type Kind int

const (
	KindPage Kind = iota
	KindCallback
	KindHealth
	KindRobots
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindCallback:
		return "callback"
	case KindHealth:
		return "health"
	case KindRobots:
		return "robots"
	}
	return "unknown"
}

// Route maps an exact, case-sensitive path to a behavior.
// Page is only meaningful for KindPage.
type Route struct {
	Path string
	Kind Kind
	Page pages.Name
}

// DefaultRoutes returns the routes served by the legal pages site
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Kind: KindPage, Page: pages.Home},
		{Path: "/terms", Kind: KindPage, Page: pages.Terms},
		{Path: "/terms.html", Kind: KindPage, Page: pages.Terms},
		{Path: "/privacy", Kind: KindPage, Page: pages.Privacy},
		{Path: "/privacy.html", Kind: KindPage, Page: pages.Privacy},
		{Path: "/callback", Kind: KindCallback},
		{Path: "/health", Kind: KindHealth},
		{Path: "/ping", Kind: KindHealth},
		{Path: "/robots.txt", Kind: KindRobots},
	}
}

// Table is the route table. It is built once and never mutated.
type Table struct {
	routes map[string]Route
}

// NewTable builds a table from routes. A later route with the same path replaces an earlier one.
func NewTable(routes []Route) *Table {
	t := &Table{routes: make(map[string]Route, len(routes))}
	for _, rt := range routes {
		t.routes[rt.Path] = rt
	}
	return t
}

// Lookup finds the route for an exact path
func (t *Table) Lookup(path string) (Route, bool) {
	rt, ok := t.routes[path]
	return rt, ok
}

// Paths returns every routed path in sorted order
func (t *Table) Paths() []string {
	paths := make([]string, 0, len(t.routes))
	for p := range t.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
