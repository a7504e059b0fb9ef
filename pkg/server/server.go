package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/classify"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/config"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/search"
)

// rawRequest is the superset of every request shape, decoded first to
// dispatch on the action field.
type rawRequest struct {
	ID       string     `msgpack:"id"`
	Action   string     `msgpack:"action"`
	Text     string     `msgpack:"t"`
	Category string     `msgpack:"cat"`
	Query    string     `msgpack:"q"`
	Items    [][]string `msgpack:"items"`
	MaxTypos int        `msgpack:"typos"`
	Limit    int        `msgpack:"l"`
	Trace    bool       `msgpack:"trace"`
}

// Server handles the IPC for classification and search
type Server struct {
	engine  *classify.Engine
	index   *search.Index
	cfg     config.ServerConfig
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a classification server using stdin/stdout for IPC.
func NewServer(engine *classify.Engine, index *search.Index, cfg config.ServerConfig) *Server {
	return &Server{
		engine:  engine,
		index:   index,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(os.Stdin),
		encoder: msgpack.NewEncoder(os.Stdout),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request rawRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches on the action field.
func (s *Server) handleRequest(request rawRequest) {
	switch request.Action {
	case "classify", "":
		s.handleClassify(request)
	case "search":
		s.handleSearch(request)
	case "learn":
		s.handleLearn(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleClassify(request rawRequest) {
	if request.Text == "" && request.Action == "" {
		s.sendError(request.ID, "Missing 't' parameter", 400)
		log.Debug("Text is empty in request")
		return
	}
	if s.cfg.MaxInput > 0 && len(request.Text) > s.cfg.MaxInput {
		request.Text = request.Text[:s.cfg.MaxInput]
	}

	start := time.Now()
	result := s.engine.Classify(request.Text)
	elapsed := time.Since(start).Microseconds()

	limit := request.Limit
	if limit <= 0 || limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	response := ClassifyResponse{
		ID:           request.ID,
		Category:     result.Category.Name,
		CategoryKind: uint8(result.Category.Kind),
		Confidence:   result.Confidence,
		Explanation:  result.Explanation,
		TimeTaken:    elapsed,
	}
	for i, alt := range result.Alternatives {
		if i >= limit {
			break
		}
		response.Alternatives = append(response.Alternatives, AltCandidate{
			Category:   alt.Category.Name,
			Confidence: alt.Confidence,
			Algorithm:  string(alt.Algorithm),
			Note:       alt.Note,
		})
	}
	if request.Trace || s.cfg.SendTrace {
		response.Trace = result.Trace
	}
	s.send(response)
}

func (s *Server) handleSearch(request rawRequest) {
	start := time.Now()

	items := make([]any, len(request.Items))
	for i, fields := range request.Items {
		items[i] = fields
	}

	var hits []search.Hit
	if request.MaxTypos > 0 {
		hits = s.index.SearchWithTypoTolerance(items, request.Query, request.MaxTypos)
	} else {
		hits = s.index.Search(items, request.Query)
	}
	elapsed := time.Since(start).Microseconds()

	response := SearchResponse{ID: request.ID, Count: len(hits), TimeTaken: elapsed}
	for _, hit := range hits {
		out := SearchHit{Index: hit.Index, Score: hit.Score}
		if len(hit.Highlights) > 0 {
			out.Highlights = make(map[string][]HitSpan, len(hit.Highlights))
			for field, spans := range hit.Highlights {
				for _, span := range spans {
					out.Highlights[field] = append(out.Highlights[field], HitSpan{Start: span.Start, End: span.End})
				}
			}
		}
		response.Hits = append(response.Hits, out)
	}
	s.send(response)
}

func (s *Server) handleLearn(request rawRequest) {
	if request.Text == "" || request.Category == "" {
		// Invalid learning input is a no-op, but the client still gets
		// an acknowledgement so it can clear its queue.
		s.send(LearnResponse{ID: request.ID, Status: "ignored"})
		return
	}
	s.engine.LearnFromCorrection(request.Text, category.Parse(request.Category))
	s.send(LearnResponse{ID: request.ID, Status: "ok"})
}

// send marshals the response with msgpack and writes it to stdout.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// ItemFields builds the standard field set for host-supplied items, one
// weighted field per position in the request's string slices.
func ItemFields(names []string, weights []float64) []search.Field {
	fields := make([]search.Field, 0, len(names))
	for i, name := range names {
		pos := i
		weight := 1.0
		if i < len(weights) {
			weight = weights[i]
		}
		fields = append(fields, search.Field{
			Name:   name,
			Weight: weight,
			Extract: func(item any) (string, error) {
				values, ok := item.([]string)
				if !ok {
					return "", fmt.Errorf("item is %T, want []string", item)
				}
				if pos >= len(values) {
					return "", fmt.Errorf("item has %d fields, want at least %d", len(values), pos+1)
				}
				return values[pos], nil
			},
		})
	}
	return fields
}
