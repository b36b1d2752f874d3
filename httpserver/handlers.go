package httpserver

import (
	"errors"
	"strconv"

	"github.com/indigo-web/indigo/http"
	"github.com/indigo-web/indigo/http/mime"
	"github.com/indigo-web/indigo/http/status"
)

var errNoFile = errors.New("no file uploaded")

// uploadedFile extracts the "file" multipart field. The returned name falls
// back to def when the client sent no filename.
func uploadedFile(request *http.Request, def string) ([]byte, string, error) {
	form, err := request.Body.Form()
	if err != nil {
		return nil, "", err
	}
	data, ok := form.Name("file")
	if !ok || len(data.Value) == 0 {
		return nil, "", errNoFile
	}
	name := data.Filename
	if name == "" {
		name = def
	}
	return []byte(data.Value), name, nil
}

func (s *Server) compress(request *http.Request) *http.Response {
	payload, name, err := uploadedFile(request, "file")
	if err != nil {
		return respondError(request, status.BadRequest, err.Error())
	}

	res := s.svc.Compress(payload, name)
	if !res.OK() {
		return respondError(request, status.InternalServerError, res.Err.Error())
	}
	return request.Respond().
		ContentType(mime.OctetStream).
		Header("Content-Disposition", `attachment; filename="`+res.FileName+`"`).
		Header("X-Operation-Id", res.OperationID).
		Header("X-Original-Size", strconv.Itoa(res.OriginalSize)).
		Header("X-Compressed-Size", strconv.Itoa(res.ProcessedSize)).
		Bytes(res.Data)
}

func (s *Server) decompress(request *http.Request) *http.Response {
	payload, name, err := uploadedFile(request, "file.huff")
	if err != nil {
		return respondError(request, status.BadRequest, err.Error())
	}

	res := s.svc.Decompress(payload, name)
	if !res.OK() {
		return respondError(request, decompressFailureCode(res.Err), res.Err.Error())
	}
	return request.Respond().
		ContentType(mime.OctetStream).
		Header("Content-Disposition", `attachment; filename="`+res.FileName+`"`).
		Header("X-Operation-Id", res.OperationID).
		Header("X-Original-Size", strconv.Itoa(res.ProcessedSize)).
		Bytes(res.Data)
}

func (s *Server) compressJSON(request *http.Request) *http.Response {
	payload, name, err := uploadedFile(request, "file")
	if err != nil {
		return respondError(request, status.BadRequest, err.Error())
	}

	res := s.svc.Compress(payload, name)
	if !res.OK() {
		return respondError(request, status.InternalServerError, res.Err.Error())
	}
	return respondJSON(request, status.OK, newCompressResponse(res))
}

func (s *Server) decompressJSON(request *http.Request) *http.Response {
	payload, name, err := uploadedFile(request, "file.huff")
	if err != nil {
		return respondError(request, status.BadRequest, err.Error())
	}

	res := s.svc.Decompress(payload, name)
	if !res.OK() {
		return respondError(request, decompressFailureCode(res.Err), res.Err.Error())
	}
	return respondJSON(request, status.OK, newDecompressResponse(res))
}

func (s *Server) analyze(request *http.Request) *http.Response {
	payload, name, err := uploadedFile(request, "file")
	if err != nil {
		return respondError(request, status.BadRequest, err.Error())
	}

	stats := s.svc.Analyze(payload)
	return respondJSON(request, status.OK, newAnalyzeResponse(name, len(payload), stats))
}

func (s *Server) validate(request *http.Request) *http.Response {
	payload, name, err := uploadedFile(request, "file")
	if err != nil {
		return respondError(request, status.BadRequest, err.Error())
	}
	return respondJSON(request, status.OK, newValidateResponse(name, s.svc.CanDecompress(payload)))
}

func (s *Server) progress(request *http.Request) *http.Response {
	id := request.Vars.Value("operationId")
	progress, ok := s.svc.Progress(id)
	if !ok {
		return respondError(request, status.NotFound, "unknown operation: "+id)
	}
	return respondJSON(request, status.OK, newProgressResponse(progress))
}

func (s *Server) cleanup(request *http.Request) *http.Response {
	id := request.Vars.Value("operationId")
	s.svc.Cleanup(id)
	return request.Respond().Code(status.NoContent)
}

func (s *Server) health(request *http.Request) *http.Response {
	return respondJSON(request, status.OK, healthResponse{
		Status:  "UP",
		Service: "huffzip compression service",
	})
}
