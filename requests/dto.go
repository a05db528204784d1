package requests

import (
	"time"

	"github.com/brettbedarf/docfs"
)

// EntryDTO is the JSON representation of [docfs.Entry]. The filesystem path
// is never exposed to clients.
type EntryDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	MimeType string    `json:"mime_type"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"modified"`
	Flags    []string  `json:"flags"`
}

// RootDTO is the JSON representation of [docfs.RootSummary]
type RootDTO struct {
	RootID         string   `json:"root_id"`
	DocumentID     string   `json:"document_id"`
	MimeTypes      []string `json:"mime_types"`
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	SupportsCreate bool     `json:"supports_create"`
	AvailableBytes uint64   `json:"available_bytes"`
}

// CreateRequestDTO is the JSON body of a create request
type CreateRequestDTO struct {
	ParentID    string  `json:"parent_id"`
	MimeType    *string `json:"mime_type,omitempty"` // Default text/plain
	DisplayName string  `json:"display_name"`
}

// CreatedDTO is returned after a successful create
type CreatedDTO struct {
	ID string `json:"id"`
}

func NewEntryDTO(e *docfs.Entry) EntryDTO {
	return EntryDTO{
		ID:       e.ID,
		Name:     e.Name,
		MimeType: e.MimeType,
		Size:     e.Size,
		ModTime:  e.ModTime,
		Flags:    e.Flags.Names(),
	}
}

func NewEntryDTOs(entries []*docfs.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewEntryDTO(e))
	}
	return out
}

func NewRootDTO(r *docfs.RootSummary) RootDTO {
	return RootDTO{
		RootID:         r.RootID,
		DocumentID:     r.DocumentID,
		MimeTypes:      r.MimeTypes,
		Title:          r.Title,
		Summary:        r.Summary,
		SupportsCreate: r.SupportsCreate,
		AvailableBytes: r.AvailableBytes,
	}
}
