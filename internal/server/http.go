package server

import (
	"embed"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/venture_radar/internal/conf"
	"github.com/iWorld-y/venture_radar/internal/service"
)

//go:embed assets/*
var assets embed.FS

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// NewHTTPServer registers the single page and the JSON API.
func NewHTTPServer(c *conf.Server, s *service.AnalysisService, logger log.Logger) *http.Server {
	helper := log.NewHelper(logger)

	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	if c.Http.Timeout != "" {
		if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
			opts = append(opts, http.Timeout(d))
		}
	}

	srv := http.NewServer(opts...)

	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/" {
			nethttp.NotFound(w, r)
			return
		}
		content, _ := assets.ReadFile("assets/index.html")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	})

	srv.HandleFunc("/api/sectors", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeJSON(w, nethttp.StatusOK, map[string]any{"sectors": service.SectorOptions()})
	})

	srv.HandleFunc("/api/analysis", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}

		var req service.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, nethttp.StatusBadRequest, map[string]any{"warning": "invalid request body"})
			return
		}

		reply, err := s.Analyze(r.Context(), &req)
		if err != nil {
			var ve *service.ValidationError
			if errors.As(err, &ve) {
				writeJSON(w, nethttp.StatusBadRequest, map[string]any{"warning": ve.Message})
				return
			}
			helper.Errorf("analysis request failed: %v", err)
			writeJSON(w, nethttp.StatusBadGateway, map[string]any{"error": "analysis failed, please try again later"})
			return
		}

		writeJSON(w, nethttp.StatusOK, reply)
	})

	srv.HandleFunc("/api/analysis/export", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}

		var req service.ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, nethttp.StatusBadRequest, map[string]any{"warning": "invalid request body"})
			return
		}

		path, filename, err := s.Export(&req)
		if err != nil {
			var ve *service.ValidationError
			if errors.As(err, &ve) {
				writeJSON(w, nethttp.StatusBadRequest, map[string]any{"warning": ve.Message})
				return
			}
			helper.Errorf("export failed: %v", err)
			writeJSON(w, nethttp.StatusInternalServerError, map[string]any{"error": "export failed"})
			return
		}

		f, err := os.Open(path)
		if err != nil {
			helper.Errorf("failed to open export file: %v", err)
			writeJSON(w, nethttp.StatusInternalServerError, map[string]any{"error": "export failed"})
			return
		}
		defer f.Close()

		w.Header().Set("Content-Type", docxMIME)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		io.Copy(w, f)
	})

	srv.HandleFunc("/api/analyses", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		records, err := s.History(r.Context(), limit)
		if err != nil {
			helper.Errorf("history listing failed: %v", err)
			writeJSON(w, nethttp.StatusInternalServerError, map[string]any{"error": "history unavailable"})
			return
		}
		writeJSON(w, nethttp.StatusOK, map[string]any{"analyses": records})
	})

	return srv
}

func writeJSON(w nethttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
