package hostbridge

import (
	"encoding/json"

	"glowgrid/internal/heatmap"
)

type renderParams struct {
	View    string `json:"view"`
	LimHist *int   `json:"limhist,omitempty"`
	LimFcst *int   `json:"limfcst,omitempty"`
}

func (s *Server) handleRender(params json.RawMessage) (interface{}, interface{}) {
	var p renderParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, rpcError(-32602, "Invalid params")
	}
	view, err := heatmap.ParseView(p.View)
	if err != nil {
		return nil, rpcError(-32602, err.Error())
	}

	payload, err := s.creator.Generate(view, p.LimHist, p.LimFcst)
	if err != nil {
		return nil, rpcError(-32000, err.Error())
	}
	return payload, nil
}

type legendParams struct {
	Average float64 `json:"average"`
}

func (s *Server) handleLegend(params json.RawMessage) (interface{}, interface{}) {
	var p legendParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, rpcError(-32602, "Invalid params")
	}

	statsLegend, heatmapLegend := heatmap.ComputeLegends(p.Average)
	return map[string]interface{}{
		"statsLegend":   statsLegend,
		"heatmapLegend": heatmapLegend,
	}, nil
}

func (s *Server) handlePerformance() interface{} {
	sample, ok := s.store.Current()
	if !ok {
		// Explicit null keeps the result field present in the response.
		return json.RawMessage("null")
	}
	return sample
}
