package provider

import (
	"io/fs"
	"mime"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/docfs"
)

// Types the host mime tables commonly lack
var extTypes = map[string]string{
	".txt":  docfs.MimeTypeText,
	".text": docfs.MimeTypeText,
	".md":   "text/markdown",
	".csv":  "text/csv",
	".log":  docfs.MimeTypeText,
}

func mimeTypeFor(name string, info fs.FileInfo) string {
	if info.IsDir() {
		return docfs.MimeTypeDir
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return docfs.MimeTypeDefault
	}
	if t, ok := extTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		// drop parameters such as "; charset=utf-8"
		if media, _, err := mime.ParseMediaType(t); err == nil {
			return media
		}
	}
	return docfs.MimeTypeDefault
}
