package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/internal/util"
	"github.com/brettbedarf/docfs/requests"
	"github.com/brettbedarf/docfs/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the document namespace over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := util.GetLogger("serve")
			srv := server.New(a.cfg, a.provider)
			l, err := net.Listen("tcp", a.cfg.ListenAddr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", l.Addr())
			done := srv.ServeAsync(l)

			// Setup signal handling for graceful shutdown
			signalChan := make(chan os.Signal, 1)
			signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(signalChan)

			select {
			case err := <-done:
				return err
			case sig := <-signalChan:
				logger.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return <-done
		},
	}
	cmd.Flags().String("listen", "", "Listen address (default 127.0.0.1:8080)")
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := a.provider.RootInfo(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), requests.NewRootDTO(root))
			}
			return printRoot(cmd.OutOrStdout(), root)
		},
	}
}

func newLsCmd(a *app) *cobra.Command {
	var sortExpr string
	cmd := &cobra.Command{
		Use:   "ls [id]",
		Short: "List the children of a directory document (default the root)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := a.provider.RootID()
			if len(args) == 1 {
				id = args[0]
			}
			opts, err := docfs.ParseSort(sortExpr)
			if err != nil {
				return err
			}
			entries, err := a.provider.Children(cmd.Context(), id, opts)
			if err != nil {
				return err
			}
			return a.emitEntries(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().StringVar(&sortExpr, "sort", "", "Order by name, size or modified; prefix '-' for descending")
	return cmd
}

func newStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <id>",
		Short: "Describe one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.provider.Document(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.emitEntry(cmd.OutOrStdout(), e)
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path|id>",
		Short: "Translate an absolute path to its identifier, or an identifier to its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out string
			var err error
			if filepath.IsAbs(args[0]) {
				out, err = a.provider.IDForPath(filepath.Clean(args[0]))
			} else {
				out, err = a.provider.PathForID(args[0])
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var mimeType string
	var dir bool
	cmd := &cobra.Command{
		Use:   "create <parent-id> <name>",
		Short: "Create an empty document or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir {
				mimeType = docfs.MimeTypeDir
			}
			id, err := a.provider.CreateDocument(cmd.Context(), args[0], mimeType, args[1])
			if err != nil {
				return err
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), requests.CreatedDTO{ID: id})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
	cmd.Flags().StringVar(&mimeType, "mime", docfs.MimeTypeText, "MIME type of the new document")
	cmd.Flags().BoolVar(&dir, "dir", false, "Create a directory")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.provider.DeleteDocument(cmd.Context(), args[0])
		},
	}
}
