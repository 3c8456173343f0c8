package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	esponce "github.com/esponce/client-go"
)

type metaView struct {
	Meta esponce.Meta `json:"meta" yaml:"meta"`
	Data any          `json:"data" yaml:"data"`
}

// print writes res to path, or to stdout when path is empty. JSON
// payloads are rendered in the --output format; text and binary are
// written as received.
func (a *app) print(res *esponce.Result, path string) (err error) {
	if path == "" {
		return a.render(a.cfg.Stdout, res)
	}
	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() { err = closeOutput(f, path, err) }()
	return a.render(f, res)
}

func (a *app) render(w io.Writer, res *esponce.Result) error {
	switch res.Kind {
	case esponce.DataJSON:
		var v any = res.Data
		if a.showMeta {
			v = metaView{Meta: res.Meta, Data: res.Data}
		}
		return a.encode(w, v)
	case esponce.DataText:
		text, _ := res.Text()
		_, err := io.WriteString(w, text)
		return err
	case esponce.DataBinary:
		data, _ := res.Bytes()
		_, err := w.Write(data)
		return err
	default:
		if a.showMeta {
			return a.encode(w, metaView{Meta: res.Meta})
		}
		return nil
	}
}

// closeOutput closes c and reports its error unless err is already set.
func closeOutput(c io.Closer, path string, err error) error {
	cerr := c.Close()
	if err != nil {
		return err
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}
	return nil
}

func (a *app) encode(w io.Writer, v any) error {
	switch a.output {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", a.output)
	}
}

func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return f, nil
}

// readInput reads a file, or stdin when path is "-".
func (a *app) readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(a.cfg.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
