package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"maps"
	"net/http"
	"slices"

	"go.uber.org/zap"

	"devtools.znkr.io/devtools/compare"
	"devtools.znkr.io/devtools/i18n"
	"devtools.znkr.io/devtools/inspect"
	"devtools.znkr.io/devtools/report"
)

// maxBodySize limits the size of request bodies.
const maxBodySize = 1 << 20

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var algorithms = slices.Sorted(maps.Keys(compare.Algorithms))

type handler struct {
	lang   i18n.Language
	logger *zap.Logger
	mux    *http.ServeMux
}

func newHandler(lang i18n.Language, logger *zap.Logger) *handler {
	h := &handler{
		lang:   lang,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /{$}", h.index)
	h.mux.HandleFunc("GET /compare", h.compareForm)
	h.mux.HandleFunc("POST /compare", h.compareForm)
	h.mux.HandleFunc("GET /inspect", h.inspectForm)
	h.mux.HandleFunc("POST /inspect", h.inspectForm)
	h.mux.HandleFunc("POST /api/compare", h.apiCompare)
	h.mux.HandleFunc("POST /api/inspect", h.apiInspect)
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.logger.Debug("Handling request", zap.String("method", req.Method), zap.String("path", req.URL.Path))
	req.Body = http.MaxBytesReader(w, req.Body, maxBodySize)
	h.mux.ServeHTTP(w, req)
}

// language selects the response language from the lang query parameter, then the
// Accept-Language header, then the configured default.
func (h *handler) language(req *http.Request) i18n.Language {
	if q := req.URL.Query().Get("lang"); q != "" {
		if lang, err := i18n.ParseLanguage(q); err == nil {
			return lang
		}
	}
	if lang, ok := i18n.Match(req.Header.Values("Accept-Language")...); ok {
		return lang
	}
	return h.lang
}

func (h *handler) catalog(w http.ResponseWriter, req *http.Request) (*i18n.Catalog, bool) {
	cat, err := i18n.For(h.language(req))
	if err != nil {
		h.fail(w, req, http.StatusInternalServerError, err)
		return nil, false
	}
	return cat, true
}

func (h *handler) index(w http.ResponseWriter, req *http.Request) {
	cat, ok := h.catalog(w, req)
	if !ok {
		return
	}
	h.page(w, req, http.StatusOK, cat, cat.T("tools.title"), cat.T("tools.description"), "index", struct {
		Cat   *i18n.Catalog
		Tools []report.Link
	}{
		Cat:   cat,
		Tools: nav(cat)[1:],
	})
}

type compareData struct {
	Cat        *i18n.Catalog
	Lang       i18n.Language
	A, B       string
	Algorithm  string
	Algorithms []string
	Error      string
	Result     template.HTML
}

func (h *handler) compareForm(w http.ResponseWriter, req *http.Request) {
	cat, ok := h.catalog(w, req)
	if !ok {
		return
	}
	data := compareData{
		Cat:        cat,
		Lang:       cat.Language(),
		Algorithm:  compare.Aligned.String(),
		Algorithms: algorithms,
	}
	status := http.StatusOK
	if req.Method == http.MethodPost {
		if err := req.ParseForm(); err != nil {
			h.fail(w, req, formStatus(err), err)
			return
		}
		data.A, data.B = req.PostForm.Get("a"), req.PostForm.Get("b")
		if algo := req.PostForm.Get("algorithm"); algo != "" {
			data.Algorithm = algo
		}
		res, err := runCompare(data.A, data.B, data.Algorithm)
		switch {
		case errors.Is(err, compare.ErrEmptyInput):
			status, data.Error = http.StatusBadRequest, cat.T("stringCompare.emptyInput")
		case err != nil:
			status, data.Error = http.StatusBadRequest, err.Error()
		default:
			data.Result, err = report.CompareHTML(cat, res)
			if err != nil {
				h.fail(w, req, http.StatusInternalServerError, err)
				return
			}
		}
	}
	h.page(w, req, status, cat, cat.T("stringCompare.title"), cat.T("stringCompare.longDescription"), "compare", data)
}

type inspectData struct {
	Cat    *i18n.Catalog
	Lang   i18n.Language
	Text   string
	Error  string
	Result template.HTML
}

func (h *handler) inspectForm(w http.ResponseWriter, req *http.Request) {
	cat, ok := h.catalog(w, req)
	if !ok {
		return
	}
	data := inspectData{Cat: cat, Lang: cat.Language()}
	status := http.StatusOK
	if req.Method == http.MethodPost {
		if err := req.ParseForm(); err != nil {
			h.fail(w, req, formStatus(err), err)
			return
		}
		data.Text = req.PostForm.Get("text")
		findings, err := inspect.Inspect(data.Text)
		switch {
		case errors.Is(err, inspect.ErrEmptyInput):
			status, data.Error = http.StatusBadRequest, cat.T("stringInspector.emptyInput")
		case err != nil:
			status, data.Error = http.StatusBadRequest, err.Error()
		default:
			data.Result, err = report.InspectHTML(cat, data.Text, findings)
			if err != nil {
				h.fail(w, req, http.StatusInternalServerError, err)
				return
			}
		}
	}
	h.page(w, req, status, cat, cat.T("stringInspector.title"), cat.T("stringInspector.longDescription"), "inspect", data)
}

func (h *handler) apiCompare(w http.ResponseWriter, req *http.Request) {
	cat, ok := h.catalog(w, req)
	if !ok {
		return
	}
	var in struct {
		A         string `json:"a"`
		B         string `json:"b"`
		Algorithm string `json:"algorithm"`
	}
	if err := decode(req, &in); err != nil {
		h.jsonError(w, req, formStatus(err), err.Error())
		return
	}
	res, err := runCompare(in.A, in.B, in.Algorithm)
	switch {
	case errors.Is(err, compare.ErrEmptyInput):
		h.jsonError(w, req, http.StatusBadRequest, cat.T("stringCompare.emptyInput"))
		return
	case err != nil:
		h.jsonError(w, req, http.StatusBadRequest, err.Error())
		return
	}
	h.respond(w, req, http.StatusOK, report.JSON.MimeType(), func(w io.Writer) error {
		return report.WriteCompare(w, report.JSON, cat, res)
	})
}

func (h *handler) apiInspect(w http.ResponseWriter, req *http.Request) {
	cat, ok := h.catalog(w, req)
	if !ok {
		return
	}
	var in struct {
		Text string `json:"text"`
	}
	if err := decode(req, &in); err != nil {
		h.jsonError(w, req, formStatus(err), err.Error())
		return
	}
	findings, err := inspect.Inspect(in.Text)
	switch {
	case errors.Is(err, inspect.ErrEmptyInput):
		h.jsonError(w, req, http.StatusBadRequest, cat.T("stringInspector.emptyInput"))
		return
	case err != nil:
		h.jsonError(w, req, http.StatusBadRequest, err.Error())
		return
	}
	h.respond(w, req, http.StatusOK, report.JSON.MimeType(), func(w io.Writer) error {
		return report.WriteInspect(w, report.JSON, cat, in.Text, findings)
	})
}

func runCompare(a, b, algorithm string) (*compare.Result, error) {
	algo, err := compare.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	return compare.Compare(a, b, compare.WithAlgorithm(algo))
}

func decode(req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}
	return nil
}

// formStatus maps errors reading the request body to a status code.
func formStatus(err error) int {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func nav(cat *i18n.Catalog) []report.Link {
	q := "?lang=" + string(cat.Language())
	return []report.Link{
		{Title: cat.T("tools.title"), Href: "/" + q},
		{Title: cat.T("stringCompare.title"), Href: "/compare" + q},
		{Title: cat.T("stringInspector.title"), Href: "/inspect" + q},
	}
}

func (h *handler) page(w http.ResponseWriter, req *http.Request, status int, cat *i18n.Catalog, title, desc, name string, data any) {
	var content bytes.Buffer
	if err := templates.ExecuteTemplate(&content, name, data); err != nil {
		h.fail(w, req, http.StatusInternalServerError, fmt.Errorf("rendering %s: %v", name, err))
		return
	}
	h.respond(w, req, status, report.HTML.MimeType(), func(w io.Writer) error {
		return report.Page(w, report.PageData{
			Lang:        cat.Language(),
			Title:       title,
			Description: desc,
			Nav:         nav(cat),
			Content:     template.HTML(content.String()),
		})
	})
}

// respond renders the body before writing the header, so that rendering errors still result in a
// proper error response.
func (h *handler) respond(w http.ResponseWriter, req *http.Request, status int, mimeType string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		h.fail(w, req, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("Failed to write response", zap.String("path", req.URL.Path), zap.Error(err))
	}
}

func (h *handler) jsonError(w http.ResponseWriter, req *http.Request, status int, msg string) {
	h.respond(w, req, status, report.JSON.MimeType(), func(w io.Writer) error {
		return json.NewEncoder(w).Encode(map[string]string{"error": msg})
	})
}

func (h *handler) fail(w http.ResponseWriter, req *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("Failed to serve request", zap.String("path", req.URL.Path), zap.Error(err))
	}
	w.Header().Set("Content-Type", "text/plain;charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, err.Error())
}
