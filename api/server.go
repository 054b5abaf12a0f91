// Copyright 2025 The Population Sample Simulator Authors
// This file is part of the Population Sample Simulator.
//
// The simulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The simulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the simulator. If not, see <http://www.gnu.org/licenses/>.

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/op/go-logging"

	"github.com/thatguywow/population-sample-simulator/ipf"
	"github.com/thatguywow/population-sample-simulator/marginals"
)

// maxUploadBytes bounds the size of an uploaded marginals file.
const maxUploadBytes = 10 << 20

const indexText = `Population Sample Simulator

POST /api/generate with form fields:
  mode  demo | ipf
  n     number of rows to generate
  file  marginals file for ipf mode (CSV with axis,category,value columns, or a marginals JSON file)

GET /healthz for liveness.
`

// Server exposes population generation over HTTP.
type Server struct {
	svc Service
	log *logging.Logger
}

// NewServer creates a Server around the given service.
func NewServer(svc Service, log *logging.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// Router builds the HTTP handler with request logging.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/generate", s.handleGenerate).Methods(http.MethodPost)
	return handlers.LoggingHandler(os.Stdout, r)
}

// ListenAndServe runs the server on the given port until it fails.
func (s *Server) ListenAndServe(port string) error {
	s.log.Noticef("serving on :%v", port)
	return http.ListenAndServe(":"+port, s.Router())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, indexText)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// generateResponse is the success payload of /api/generate.
type generateResponse struct {
	Mode  string   `json:"mode"`
	Count int      `json:"count"`
	Rows  any      `json:"rows"`
	Fit   *fitInfo `json:"fit,omitempty"`
}

// fitInfo reports the convergence quality of an ipf run so that callers
// can tell a good fit from a poor one.
type fitInfo struct {
	MaxDeviation float64 `json:"max_deviation"`
	Iterations   int     `json:"iterations"`
	Converged    bool    `json:"converged"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && err != http.ErrNotMultipart {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("cannot parse request: %v", err))
		return
	}
	mode := r.FormValue("mode")
	if mode == "" {
		mode = "demo"
	}
	n := 100
	if v := r.FormValue("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid row count %q", v))
			return
		}
		n = parsed
	}

	switch mode {
	case "demo":
		rows := s.svc.Demo(n)
		writeJSON(w, http.StatusOK, generateResponse{Mode: "demo", Count: len(rows), Rows: rows})
	case "ipf":
		axes, err := s.readMarginals(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		records, res, err := s.svc.FitSample(axes, n)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !res.Converged {
			s.log.Warningf("fit did not converge: deviation %v after %d iterations", res.MaxDeviation, res.Iterations)
		}
		writeJSON(w, http.StatusOK, generateResponse{
			Mode:  "ipf",
			Count: len(records),
			Rows:  records,
			Fit: &fitInfo{
				MaxDeviation: res.MaxDeviation,
				Iterations:   res.Iterations,
				Converged:    res.Converged,
			},
		})
	case "ctgan":
		// generative-model training is an external-library path the
		// service does not ship
		writeError(w, http.StatusBadRequest, "mode ctgan is not available")
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q", mode))
	}
}

// readMarginals decodes the uploaded marginals file, accepting the tall
// CSV form or a marginals JSON file depending on the filename.
func (s *Server) readMarginals(r *http.Request) ([]ipf.Axis, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("ipf mode expects a marginals file upload")
	}
	defer func() { _ = file.Close() }()
	if strings.HasSuffix(strings.ToLower(header.Filename), ".json") {
		contents, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, fmt.Errorf("cannot read upload; %v", err)
		}
		return marginals.DecodeJSON(contents)
	}
	return marginals.DecodeCSV(io.LimitReader(file, maxUploadBytes))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
