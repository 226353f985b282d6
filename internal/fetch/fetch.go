// Package fetch loads the todo collection from the remote endpoint.
//
// Every failure mode (network, status, body, schema, decode) collapses into
// ErrUnavailable and an empty collection. The concrete cause stays wrapped
// for logs and errors.Is, but callers only ever need the one category.
package fetch

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/taskboard/internal/model"
)

// DefaultEndpoint serves the public sample todo collection.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/todos"

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 8 << 20

// ErrUnavailable is the single "data source unavailable" condition.
var ErrUnavailable = errors.New("data source unavailable")

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

//go:embed tasks.schema.json
var schemaJSON []byte

const schemaURL = "tasks.schema.json"

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// Fetcher issues the one GET for the collection.
type Fetcher struct {
	url    string
	client *http.Client
	logger *log.Logger
	schema *jsonschema.Schema
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient replaces http.DefaultClient.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithLogger routes failure diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

func New(url string, opts ...Option) (*Fetcher, error) {
	if url == "" {
		return nil, fmt.Errorf("fetch: empty endpoint")
	}
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	f := &Fetcher{
		url:    url,
		client: http.DefaultClient,
		schema: schema,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = log.New(io.Discard)
	}
	return f, nil
}

// URL is the endpoint this fetcher reads.
func (f *Fetcher) URL() string { return f.url }

// Fetch performs a single best-effort request. On any failure it returns an
// empty, non-nil collection and an error wrapping ErrUnavailable.
func (f *Fetcher) Fetch(ctx context.Context) ([]model.Task, error) {
	tasks, err := f.fetch(ctx)
	if err != nil {
		f.logger.Error("fetch failed", "url", f.url, "err", err)
		return []model.Task{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	f.logger.Debug("fetched todos", "url", f.url, "count", len(tasks))
	return tasks, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]model.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return f.decode(b)
}

func (f *Fetcher) decode(b []byte) ([]model.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	if err := f.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
