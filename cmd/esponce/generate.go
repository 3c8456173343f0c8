package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	esponce "github.com/esponce/client-go"
)

const defaultConcurrency = 4

func (a *app) generateCmd() *cobra.Command {
	var (
		params      esponce.GenerateParams
		padding     int
		shorten     bool
		attachment  bool
		out         string
		outDir      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "generate <content>...",
		Short: "Render one or more QR Codes",
		Long: `Render QR Codes for each content argument.

A single code is written to --out or stdout. Several codes are generated
concurrently and written to --out-dir as qrcode-<n>.<format>.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("padding") {
				params.Padding = esponce.Int(padding)
			}
			if flags.Changed("shorten") {
				params.Shorten = esponce.Bool(shorten)
			}
			if flags.Changed("attachment") {
				params.Attachment = esponce.Bool(attachment)
			}

			if len(args) == 1 && outDir == "" {
				p := params
				p.Content = args[0]
				res, err := a.client.Generate(cmd.Context(), p)
				if err != nil {
					return err
				}
				return a.print(res, out)
			}

			if outDir == "" {
				return errors.New("--out-dir is required when generating several codes")
			}
			ext := params.Format
			if ext == "" {
				ext = "png"
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(concurrency, 1))
			for i, content := range args {
				p := params
				p.Content = content
				path := filepath.Join(outDir, fmt.Sprintf("qrcode-%d.%s", i+1, ext))
				g.Go(func() error {
					res, err := a.client.Generate(ctx, p)
					if err != nil {
						return fmt.Errorf("generate %q: %w", p.Content, err)
					}
					return a.print(res, path)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(a.cfg.Stdout, "wrote %d codes to %s\n", len(args), outDir)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.Format, "format", "", "image format (png, svg, eps, xaml, ...)")
	f.IntVar(&params.Version, "qr-version", 0, "QR Code version (1-40)")
	f.IntVar(&params.Size, "size", 0, "module size in pixels")
	f.IntVar(&padding, "padding", 0, "quiet zone in modules")
	f.StringVar(&params.EncodeMode, "em", "", "encode mode (byte, alphanumeric, numeric)")
	f.StringVar(&params.ErrorCorrection, "ec", "", "error correction level (L, M, Q, H)")
	f.StringVar(&params.Foreground, "foreground", "", "foreground color")
	f.StringVar(&params.Background, "background", "", "background color")
	f.BoolVar(&shorten, "shorten", false, "shorten URL content")
	f.BoolVar(&attachment, "attachment", false, "request an attachment response")
	f.StringVar(&params.Filename, "filename", "", "attachment file name")
	f.StringVar(&out, "out", "", "write a single code to this file")
	f.StringVar(&outDir, "out-dir", "", "directory for generated codes")
	f.IntVar(&concurrency, "concurrency", defaultConcurrency, "parallel requests when generating several codes")
	cmd.MarkFlagsMutuallyExclusive("out", "out-dir")
	return cmd
}
