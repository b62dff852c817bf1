// Package hostbridge exposes the render engine to a host shell over a
// newline-delimited JSON-RPC 2.0 loop on stdio.
package hostbridge

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"glowgrid/internal/heatmap"
	"glowgrid/internal/perf"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// JSONRPCRequest represents one request line from the host shell.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse mirrors the request with either a result or an error.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Server holds the engine surface the bridge exposes.
type Server struct {
	creator *heatmap.Creator
	store   *perf.Store
	version string
	in      io.Reader
	out     io.Writer
}

// NewServer creates a bridge server bound to stdio.
func NewServer(creator *heatmap.Creator, store *perf.Store, version string) *Server {
	return &Server{
		creator: creator,
		store:   store,
		version: version,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// Serve runs the JSON-RPC loop until stdin closes. Protocol failures
// become error responses; only transport failures end the loop.
func (s *Server) Serve() error {
	reader := bufio.NewReader(s.in)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			s.write(JSONRPCResponse{JSONRPC: "2.0", Error: rpcError(-32700, "Parse error")})
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	reqID := uuid.New().String()
	log.Debug().Str("req", reqID).Str("method", req.Method).Msg("Handling request")

	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": protocolVersion,
			"serverInfo": map[string]interface{}{
				"name":    "glowgrid",
				"version": s.version,
			},
		}
	case "methods/list":
		result = map[string]interface{}{"methods": methodDescriptors}
	case "render":
		result, errRes = s.handleRender(req.Params)
	case "legend":
		result, errRes = s.handleLegend(req.Params)
	case "performance/current":
		result = s.handlePerformance()
	default:
		errRes = rpcError(-32601, fmt.Sprintf("Method %s not found", req.Method))
	}

	if errRes != nil {
		log.Warn().Str("req", reqID).Str("method", req.Method).Interface("error", errRes).Msg("Request failed")
	}

	s.write(JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	})
}

func (s *Server) write(resp JSONRPCResponse) {
	out, _ := json.Marshal(resp)
	fmt.Fprintf(s.out, "%s\n", out)
}

func rpcError(code int, message string) map[string]interface{} {
	return map[string]interface{}{"code": code, "message": message}
}
