package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/internal/units"
	"github.com/brettbedarf/docfs/requests"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printEntries(w io.Writer, entries []*docfs.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tSIZE\tMODIFIED\tFLAGS\tID")
	for _, e := range entries {
		size := "-"
		if !e.IsDir() {
			size = units.Format(uint64(max(e.Size, 0)))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name, e.MimeType, size, e.ModTime.Format(time.DateTime), e.Flags, e.ID)
	}
	return tw.Flush()
}

func printEntry(w io.Writer, e *docfs.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", e.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", e.Name)
	fmt.Fprintf(tw, "Type:\t%s\n", e.MimeType)
	fmt.Fprintf(tw, "Size:\t%s (%d bytes)\n", units.Format(uint64(max(e.Size, 0))), e.Size)
	fmt.Fprintf(tw, "Modified:\t%s\n", e.ModTime.Format(time.RFC3339))
	fmt.Fprintf(tw, "Flags:\t%s\n", e.Flags)
	return tw.Flush()
}

func printRoot(w io.Writer, r *docfs.RootSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Root:\t%s\n", r.RootID)
	fmt.Fprintf(tw, "Document:\t%s\n", r.DocumentID)
	fmt.Fprintf(tw, "Title:\t%s\n", r.Title)
	fmt.Fprintf(tw, "Summary:\t%s\n", r.Summary)
	fmt.Fprintf(tw, "MIME types:\t%v\n", r.MimeTypes)
	fmt.Fprintf(tw, "Create:\t%t\n", r.SupportsCreate)
	fmt.Fprintf(tw, "Available:\t%s\n", units.Format(r.AvailableBytes))
	return tw.Flush()
}

func (a *app) emitEntries(w io.Writer, entries []*docfs.Entry) error {
	if a.jsonOut {
		return writeJSON(w, requests.NewEntryDTOs(entries))
	}
	return printEntries(w, entries)
}

func (a *app) emitEntry(w io.Writer, e *docfs.Entry) error {
	if a.jsonOut {
		return writeJSON(w, requests.NewEntryDTO(e))
	}
	return printEntry(w, e)
}
