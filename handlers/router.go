package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rohanthewiz/logger"

	"legalpages/pages"
)

const (
	contentTypeHTML  = "text/html; charset=utf-8"
	contentTypeJSON  = "application/json"
	contentTypePlain = "text/plain; charset=utf-8"

	allowedMethods = "GET, HEAD, OPTIONS"
	robotsBody     = "User-agent: *\nAllow: /"
)

// PageSource supplies static page content by name
type PageSource interface {
	Read(name pages.Name) ([]byte, error)
}

// Response is a fully rendered reply, ready to be written to the wire
type Response struct {
	Status int
	Header map[string]string
	Body   []byte
}

// HealthStatus is the body of the health and ping endpoints
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Router answers requests from a fixed route table
type Router struct {
	table       *Table
	pages       PageSource
	serviceName string
	verbose     bool
}

// NewRouter creates a router over table, reading pages from src.
// With verbose set, callback outcomes are logged per request.
func NewRouter(table *Table, src PageSource, serviceName string, verbose bool) *Router {
	return &Router{
		table:       table,
		pages:       src,
		serviceName: serviceName,
		verbose:     verbose,
	}
}

// Table returns the router's route table
func (r *Router) Table() *Table {
	return r.table
}

// Serve produces exactly one response for a request.
// rawQuery is the undecoded query string without the leading '?'.
func (r *Router) Serve(method, path, rawQuery string) Response {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		if rawQuery == "" {
			rawQuery = path[i+1:]
		}
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}

	switch method {
	case http.MethodOptions:
		return preflight()
	case http.MethodGet, http.MethodHead:
	default:
		resp := htmlResponse(http.StatusMethodNotAllowed, RenderStatusPage(http.StatusMethodNotAllowed, method+" is not supported"))
		resp.Header["Allow"] = allowedMethods
		return resp
	}

	var resp Response
	if rt, ok := r.table.Lookup(path); ok {
		resp = r.serveRoute(rt, rawQuery)
	} else {
		resp = notFound("Page not found")
	}

	if method == http.MethodHead {
		resp.Body = nil
	}
	return resp
}

func (r *Router) serveRoute(rt Route, rawQuery string) Response {
	switch rt.Kind {
	case KindPage:
		return r.servePage(rt.Page)
	case KindCallback:
		params, _ := url.ParseQuery(rawQuery)
		if r.verbose {
			logger.Info("OAuth callback", "outcome", CallbackOutcome(params))
		}
		return htmlResponse(http.StatusOK, RenderCallback(params))
	case KindHealth:
		return r.health()
	case KindRobots:
		return Response{
			Status: http.StatusOK,
			Header: map[string]string{"Content-Type": contentTypePlain},
			Body:   []byte(robotsBody),
		}
	}
	return notFound("Page not found")
}

func (r *Router) servePage(name pages.Name) Response {
	content, err := r.pages.Read(name)
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			return notFound("File " + pages.FileName(name) + " not found")
		}
		logger.LogErr(err, "failed to serve page")
		return htmlResponse(http.StatusInternalServerError, RenderStatusPage(http.StatusInternalServerError, "Unable to load page"))
	}
	return Response{
		Status: http.StatusOK,
		Header: htmlHeaders(),
		Body:   content,
	}
}

func (r *Router) health() Response {
	body, _ := json.Marshal(HealthStatus{Status: "ok", Service: r.serviceName})
	return Response{
		Status: http.StatusOK,
		Header: map[string]string{
			"Content-Type":                contentTypeJSON,
			"Access-Control-Allow-Origin": "*",
		},
		Body: body,
	}
}

func preflight() Response {
	return Response{
		Status: http.StatusOK,
		Header: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": allowedMethods,
			"Access-Control-Allow-Headers": "*",
		},
	}
}

func notFound(message string) Response {
	return htmlResponse(http.StatusNotFound, RenderStatusPage(http.StatusNotFound, message))
}

func htmlHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                contentTypeHTML,
		"Access-Control-Allow-Origin": "*",
		"X-Content-Type-Options":      "nosniff",
	}
}

func htmlResponse(status int, html string) Response {
	return Response{
		Status: status,
		Header: htmlHeaders(),
		Body:   []byte(html),
	}
}
