package handlers

import (
	"net/http"

	"github.com/rohanthewiz/rweb"
)

// SetupRoutes registers every path in the router's table.
// Anything other than a GET on a table path is answered by the middleware before routing.
func SetupRoutes(s *rweb.Server, r *Router) {
	s.Use(r.Middleware)

	for _, path := range r.Table().Paths() {
		s.Get(path, r.Handle)
	}
}

// Handle serves a GET request through the route table
func (r *Router) Handle(c rweb.Context) error {
	req := c.Request()
	return write(c, r.Serve(http.MethodGet, req.Path(), req.Query()))
}

// Middleware passes GETs on known paths to the registered handlers and
// answers everything else, including unknown paths, itself
func (r *Router) Middleware(c rweb.Context) error {
	req := c.Request()
	if req.Method() == http.MethodGet {
		if _, ok := r.Table().Lookup(req.Path()); ok {
			return c.Next()
		}
	}
	return write(c, r.Serve(req.Method(), req.Path(), req.Query()))
}

func write(c rweb.Context, resp Response) error {
	res := c.Response()
	for k, v := range resp.Header {
		res.SetHeader(k, v)
	}
	res.SetStatus(resp.Status)

	if len(resp.Body) == 0 {
		return nil
	}
	_, err := res.Write(resp.Body)
	return err
}
