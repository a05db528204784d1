package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/internal/util"
	"github.com/brettbedarf/docfs/requests"
	platformerrors "github.com/jmgilman/go/errors"
)

// maxBodyBytes bounds create request bodies
const maxBodyBytes = 1 << 20

func (s *Server) handleRoots(w http.ResponseWriter, r *http.Request) {
	root, err := s.svc.RootInfo(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, []requests.RootDTO{requests.NewRootDTO(root)})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	entry, err := s.svc.Document(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests.NewEntryDTO(entry))
}

func (s *Server) handleChildren(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	opts, err := docfs.ParseSort(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	entries, err := s.svc.Children(r.Context(), id, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests.NewEntryDTOs(entries))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "read request body"))
		return
	}
	req, err := requests.UnmarshalCreateRequest(body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := s.svc.CreateDocument(r.Context(), req.ParentID, req.MimeType, req.DisplayName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, requests.CreatedDTO{ID: id})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteDocument(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func requireID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, r, platformerrors.New(platformerrors.CodeInvalidInput, "query parameter id is required"))
		return "", false
	}
	return id, true
}

// statusFor maps error codes onto HTTP status codes
func statusFor(err error) int {
	switch platformerrors.GetCode(err) {
	case platformerrors.CodeNotFound:
		return http.StatusNotFound
	case platformerrors.CodeForbidden:
		return http.StatusForbidden
	case platformerrors.CodeInvalidInput:
		return http.StatusBadRequest
	case docfs.CodeNotADirectory, platformerrors.CodeAlreadyExists:
		return http.StatusConflict
	case docfs.CodeCanceled, platformerrors.CodeTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	logger := util.GetLogger("HTTP")
	evt := logger.Debug()
	if status >= http.StatusInternalServerError {
		evt = logger.Error()
	}
	evt.Err(err).Str("requestID", r.Header.Get(RequestIDHeader)).Int("status", status).Msg("Request failed")

	writeJSON(w, status, platformerrors.ToJSON(err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := util.GetLogger("HTTP")
		logger.Debug().Err(err).Msg("Failed to write response")
	}
}
