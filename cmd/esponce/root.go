// Command esponce is a command line client for the Esponce QR Code API.
//
// Settings come from ESPONCE_* environment variables (optionally from a
// .env file) and can be overridden with flags:
//
//	esponce generate --format svg "https://www.esponce.com"
//	esponce campaign create --data '{"name":"Spring"}'
//	esponce export --format campaigns --ext xlsx --out all.xlsx
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	esponce "github.com/esponce/client-go"
)

// Config holds the process streams the CLI reads from and writes to.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// app carries global flags and the client shared by all commands.
type app struct {
	cfg Config

	envFile  string
	key      string
	baseURL  string
	verbose  bool
	timeout  time.Duration
	output   string
	showMeta bool

	client *esponce.Client
}

func run(args []string, cfg Config) error {
	root := newRootCmd(cfg)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(cfg.Stderr, "Error:", err)
		return err
	}
	return nil
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:           "esponce",
		Short:         "Esponce QR Code API client",
		Version:       esponce.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd)
		},
	}
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", "", "load settings from this .env file (default .env)")
	pf.StringVarP(&a.key, "key", "k", "", "API key (overrides ESPONCE_API_KEY)")
	pf.StringVar(&a.baseURL, "url", "", "API base URL (overrides ESPONCE_URL)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log requests and responses to stderr")
	pf.DurationVar(&a.timeout, "timeout", 0, "request timeout (overrides ESPONCE_TIMEOUT)")
	pf.StringVarP(&a.output, "output", "o", "json", "output format for JSON results (json, yaml)")
	pf.BoolVar(&a.showMeta, "meta", false, "print response metadata along with JSON results")

	root.AddCommand(
		a.generateCmd(),
		a.decodeCmd(),
		a.listCmd(),
		a.resourceCmd(campaignResource),
		a.resourceCmd(qrcodeResource),
		a.statsCmd(),
		a.importCmd(),
		a.exportCmd(),
	)
	return root
}

// connect builds the client from the environment and the global flags.
func (a *app) connect(cmd *cobra.Command) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	cfg, err := esponce.LoadConfig(files...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	var opts []esponce.Option
	if flags.Changed("key") {
		opts = append(opts, esponce.WithAPIKey(a.key))
	}
	if flags.Changed("url") {
		opts = append(opts, esponce.WithBaseURL(a.baseURL))
	}
	if flags.Changed("timeout") {
		opts = append(opts, esponce.WithTimeout(a.timeout))
	}
	if a.verbose || cfg.Verbose {
		opts = append(opts, esponce.WithLogger(slog.New(slog.NewTextHandler(a.cfg.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	a.client, err = esponce.NewClient(cfg, opts...)
	return err
}
