package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inamate/whiteboard/internal/config"
	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/editor"
	"github.com/inamate/whiteboard/internal/script"
	"github.com/inamate/whiteboard/internal/viewport"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cfg := config.Default()

	root := &cobra.Command{
		Use:          "whiteboard",
		Short:        "Drive the whiteboard editor from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			*cfg = *loaded
			level := charmlog.Level(cfg.Level())
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			slog.SetDefault(slog.New(logger))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSampleCmd())
	root.AddCommand(newReplayCmd(cfg))
	return root
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the sample document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), document.NewSampleDocument())
		},
	}
}

type replayResult struct {
	Path      string            `json:"path"`
	Selection []string          `json:"selection"`
	Frame     int               `json:"frame"`
	Frames    int               `json:"frames"`
	Camera    viewport.Camera   `json:"camera"`
	Document  document.Document `json:"document"`
}

func newReplayCmd(cfg *config.Config) *cobra.Command {
	var docPath string

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a gesture script and print the resulting editor state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := document.NewSampleDocument()
			if docPath != "" {
				var err error
				if doc, err = readDocument(docPath); err != nil {
					return err
				}
			}

			s, err := script.LoadFile(args[0])
			if err != nil {
				return err
			}

			ed, err := editor.New(cfg, doc)
			if err != nil {
				return err
			}
			if err := script.Run(ed, s); err != nil {
				return err
			}
			slog.Info("replay finished", "events", len(s.Events), "path", ed.Path())

			return writeJSON(cmd.OutOrStdout(), replayResult{
				Path:      ed.Path(),
				Selection: ed.SelectedIDs(),
				Frame:     ed.History().Frame(),
				Frames:    ed.History().Len(),
				Camera:    ed.Camera(),
				Document:  ed.Document(),
			})
		},
	}
	cmd.Flags().StringVar(&docPath, "doc", "", "document JSON to start from (default: the sample document)")
	return cmd
}

func readDocument(path string) (document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Document{}, err
	}
	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document.Document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
