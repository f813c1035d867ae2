package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/sedam/internal/archive"
)

func newRenderCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a policy report PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, pdf, err := build(cmd, &flags)
			if err != nil {
				return err
			}

			if err := os.WriteFile(flags.out, pdf, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			pages, err := api.PageCount(bytes.NewReader(pdf), nil)
			if err != nil {
				return fmt.Errorf("count pages: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages)\n", flags.out, pages)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newArchiveCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Build a ZIP export package containing the rendered report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, pdf, err := build(cmd, &flags)
			if err != nil {
				return err
			}

			bundle := archive.Bundle{
				Title:        in.subject.Title,
				CreatedAt:    in.subject.CreatedAt,
				Policy:       in.policy,
				Report:       pdf,
				Images:       in.images,
				VideoPrompts: in.videos,
			}
			if in.analysis != nil {
				bundle.Analysis = in.analysis
			}

			data, err := archive.Build(bundle)
			if err != nil {
				return err
			}
			if err := os.WriteFile(flags.out, data, 0o644); err != nil {
				return fmt.Errorf("write archive: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d entries)\n", flags.out, len(bundle.Names()))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func build(cmd *cobra.Command, flags *inputFlags) (*inputs, []byte, error) {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	in, err := flags.load()
	if err != nil {
		return nil, nil, err
	}

	r, err := flags.renderer(logger)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := r.Render(in.document())
	if err != nil {
		return nil, nil, err
	}
	return in, pdf, nil
}
