// Package httpserver exposes the compression service over HTTP. It is thin
// plumbing: multipart uploads in, binary or JSON responses out; all codec
// semantics live in the huffzip and service packages.
package httpserver

import (
	"github.com/indigo-web/indigo/router/inbuilt"

	"github.com/rickm/huffzip/service"
)

// Server wires the compression service into an HTTP router.
type Server struct {
	svc *service.Service
}

// New constructs a Server around svc.
func New(svc *service.Service) *Server {
	return &Server{svc: svc}
}

// Router builds the route table. All endpoints live under /huffman; file
// uploads are multipart forms with the file under the "file" field.
func (s *Server) Router() *inbuilt.Router {
	r := inbuilt.New()
	r.Use(allowCORS)

	huffman := r.Group("/huffman")
	huffman.Post("/compress", s.compress)
	huffman.Post("/decompress", s.decompress)
	huffman.Post("/compress/json", s.compressJSON)
	huffman.Post("/decompress/json", s.decompressJSON)
	huffman.Post("/analyze", s.analyze)
	huffman.Post("/validate", s.validate)
	huffman.Get("/progress/:operationId", s.progress)
	huffman.Delete("/operations/:operationId", s.cleanup)
	huffman.Get("/health", s.health)

	return r
}
