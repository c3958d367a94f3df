package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/heliolabs/texlabel/pkg/errors"
	"github.com/heliolabs/texlabel/pkg/label"
	"github.com/heliolabs/texlabel/pkg/labelset"
	"github.com/heliolabs/texlabel/pkg/observability"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string // listen address
}

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP label preview server",
		Long: `Run a small HTTP server exposing label compilation for previews:

  GET /v1/label?m=v&c=x&s=p        compile one label
  GET /v1/species?code=a+p1        preview a species substitution
  GET /v1/catalog/{name}           list a token dictionary
  GET /healthz                     liveness probe

Responses use the labelset JSON wire format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newServer(c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("preview server listening", "addr", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newServer builds the preview-server handler. Split from runServe so tests
// can drive it through httptest without binding a socket.
func newServer(logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/v1/label", handleLabel)
	r.Get("/v1/species", handleSpecies)
	r.Get("/v1/catalog/{name}", handleCatalog)

	return r
}

// requestLogger logs each request and reports it to the server hooks.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			elapsed := time.Since(start)
			logger.Debug("request", "method", r.Method, "route", route,
				"status", ww.Status(), "elapsed", elapsed.Round(time.Microsecond))
			observability.Server().OnRequest(route, ww.Status(), elapsed)
		})
	}
}

// handleLabel compiles one label from query parameters:
// m (required), c, s, per, axnorm, description, multiline, name.
func handleLabel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	primary, err := label.NewMCS(q.Get("m"), q.Get("c"), q.Get("s"))
	if err != nil {
		writeError(w, err)
		return
	}

	multiline, _ := strconv.ParseBool(q.Get("multiline"))
	opts := label.Options{
		Axnorm:          q.Get("axnorm"),
		Description:     q.Get("description"),
		NewLineForUnits: multiline,
	}
	if perKey := q.Get("per"); perKey != "" {
		per, err := label.ParseMCS(perKey)
		if err != nil {
			writeError(w, err)
			return
		}
		opts.Per = &per
	}

	l, err := label.Build(primary, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	loggerFromContext(r.Context()).Debug("compiled label", "key", primary.String(), "path", l.Path())

	writeJSON(w, http.StatusOK, labelset.FromLabel(q.Get("name"), l))
}

// speciesResponse is the wire form of a species substitution preview.
type speciesResponse struct {
	Code  string `json:"code"`
	Tex   string `json:"tex"`
	Count int    `json:"count"`
}

func handleSpecies(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	rendered, count := label.SubstituteSpecies(code)
	writeJSON(w, http.StatusOK, speciesResponse{Code: code, Tex: rendered, Count: count})
}

func handleCatalog(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entries, ok := catalogs[name]
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNotFound, "no catalog named %q", name))
		return
	}
	writeJSON(w, http.StatusOK, entries())
}

// errorResponse is the wire form of a failed request.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidAxnorm, errors.ErrCodeInvalidTriple,
		errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Code: errors.GetCode(err), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
