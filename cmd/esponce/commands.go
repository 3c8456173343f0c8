package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	esponce "github.com/esponce/client-go"
)

func (a *app) decodeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "decode <image.png|->",
		Short: "Read the content of a QR Code image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			res, err := a.client.Decode(cmd.Context(), image)
			if err != nil {
				return err
			}
			return a.print(res, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the result to this file")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all campaigns and QR Codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.List(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(res, "")
		},
	}
}

// resource describes a tracked collection with get/create/update/delete.
type resource struct {
	name   string
	short  string
	get    func(c *esponce.Client, ctx context.Context, id string) (*esponce.Result, error)
	create func(c *esponce.Client, ctx context.Context, body any) (*esponce.Result, error)
	update func(c *esponce.Client, ctx context.Context, id string, body any) (*esponce.Result, error)
	delete func(c *esponce.Client, ctx context.Context, id string) (*esponce.Result, error)
}

var campaignResource = resource{
	name:  "campaign",
	short: "Manage tracked campaigns",
	get: func(c *esponce.Client, ctx context.Context, id string) (*esponce.Result, error) {
		return c.GetCampaign(ctx, id)
	},
	create: func(c *esponce.Client, ctx context.Context, body any) (*esponce.Result, error) {
		return c.CreateCampaign(ctx, body)
	},
	update: func(c *esponce.Client, ctx context.Context, id string, body any) (*esponce.Result, error) {
		return c.UpdateCampaign(ctx, id, body)
	},
	delete: func(c *esponce.Client, ctx context.Context, id string) (*esponce.Result, error) {
		return c.DeleteCampaign(ctx, id)
	},
}

var qrcodeResource = resource{
	name:  "qrcode",
	short: "Manage tracked QR Codes",
	get: func(c *esponce.Client, ctx context.Context, id string) (*esponce.Result, error) {
		return c.GetQRCode(ctx, id)
	},
	create: func(c *esponce.Client, ctx context.Context, body any) (*esponce.Result, error) {
		return c.CreateQRCode(ctx, body)
	},
	update: func(c *esponce.Client, ctx context.Context, id string, body any) (*esponce.Result, error) {
		return c.UpdateQRCode(ctx, id, body)
	},
	delete: func(c *esponce.Client, ctx context.Context, id string) (*esponce.Result, error) {
		return c.DeleteQRCode(ctx, id)
	},
}

func (a *app) resourceCmd(r resource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.name,
		Short: r.short,
	}

	var data, file string
	bodyFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&data, "data", "", "JSON body")
		c.Flags().StringVar(&file, "file", "", "read the JSON body from this file (- for stdin)")
		c.MarkFlagsMutuallyExclusive("data", "file")
	}
	body := func() (any, error) {
		var raw []byte
		switch {
		case data != "":
			raw = []byte(data)
		case file != "":
			var err error
			if raw, err = a.readInput(file); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("a JSON body is required (--data or --file)")
		}
		if !json.Valid(raw) {
			return nil, fmt.Errorf("%s body is not valid JSON", r.name)
		}
		return json.RawMessage(raw), nil
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a " + r.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := r.get(a.client, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(res, "")
		},
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a " + r.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := body()
			if err != nil {
				return err
			}
			res, err := r.create(a.client, cmd.Context(), b)
			if err != nil {
				return err
			}
			return a.print(res, "")
		},
	}
	bodyFlags(create)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a " + r.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := body()
			if err != nil {
				return err
			}
			res, err := r.update(a.client, cmd.Context(), args[0], b)
			if err != nil {
				return err
			}
			return a.print(res, "")
		},
	}
	bodyFlags(update)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + r.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := r.delete(a.client, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(res, "")
		},
	}

	cmd.AddCommand(get, create, update, del)
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	var params esponce.StatisticsParams
	var out string
	cmd := &cobra.Command{
		Use:   "stats <qrcode-id>",
		Short: "Download scan statistics of a QR Code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetStatistics(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return a.print(res, out)
		},
	}
	cmd.Flags().StringVar(&params.Format, "format", esponce.DefaultStatisticsFormat, "file format of the statistics")
	cmd.Flags().StringVar(&out, "out", "", "write the statistics to this file")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	var params esponce.ImportParams
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Import campaigns and QR Codes from CSV, XML, XLS or XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.Format == "" {
				params.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(args[0])), ".")
			}
			data, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			res, err := a.client.Import(cmd.Context(), data, params)
			if err != nil {
				return err
			}
			return a.print(res, "")
		},
	}
	cmd.Flags().StringVar(&params.Format, "format", "", "format of the data (default from the file extension)")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var params esponce.ExportParams
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all campaigns and QR Codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.Export(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.print(res, out)
		},
	}
	cmd.Flags().StringVar(&params.Format, "format", "", "what to export")
	cmd.Flags().StringVar(&params.Ext, "ext", esponce.DefaultExportExt, "file extension of the export")
	cmd.Flags().StringVar(&out, "out", "", "write the export to this file")
	return cmd
}
