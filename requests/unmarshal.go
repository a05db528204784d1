package requests

import (
	"encoding/json"
	"strings"

	"github.com/brettbedarf/docfs"
	platformerrors "github.com/jmgilman/go/errors"
)

// CreateRequest is a validated create request with defaults applied
type CreateRequest struct {
	ParentID    string
	MimeType    string
	DisplayName string
}

// UnmarshalCreateRequest decodes a create request body and applies defaults.
// Malformed bodies and missing fields are INVALID_INPUT.
func UnmarshalCreateRequest(data []byte) (*CreateRequest, error) {
	var dto CreateRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "malformed create request")
	}
	if dto.ParentID == "" {
		return nil, platformerrors.New(platformerrors.CodeInvalidInput, "parent_id is required")
	}
	if dto.DisplayName == "" {
		return nil, platformerrors.New(platformerrors.CodeInvalidInput, "display_name is required")
	}

	return &CreateRequest{
		ParentID:    dto.ParentID,
		MimeType:    strings.TrimSpace(valueOrDefault(dto.MimeType, docfs.MimeTypeText)),
		DisplayName: dto.DisplayName,
	}, nil
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
