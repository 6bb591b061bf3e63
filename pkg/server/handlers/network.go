package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/cooccur"
	"github.com/soundprediction/cooccur/pkg/graph"
	"github.com/soundprediction/cooccur/pkg/server/dto"
	"github.com/soundprediction/cooccur/pkg/types"
)

// NetworkHandler handles contact network requests. Each request constructs
// its own pipeline from the thresholds in the request body, so the handler
// itself is stateless.
type NetworkHandler struct {
	maxConcurrency int
	logger         *slog.Logger
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(maxConcurrency int, logger *slog.Logger) *NetworkHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NetworkHandler{maxConcurrency: maxConcurrency, logger: logger}
}

// Detect handles POST /api/v1/network/detect
func (h *NetworkHandler) Detect(c *gin.Context) {
	var req dto.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Message: err.Error()})
		return
	}

	maxGap, err := req.MaxGapDuration()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Message: err.Error()})
		return
	}

	pipeline, err := cooccur.New(&cooccur.Config{MaxGap: maxGap, MaxConcurrency: h.maxConcurrency}, h.logger)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid thresholds", Message: err.Error()})
		return
	}

	cooccurrences, err := pipeline.Detect(c.Request.Context(), toEvents(req.Events))
	if err != nil {
		h.logger.Error("detection failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "detection failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DetectResponse{
		Count:         len(cooccurrences),
		Cooccurrences: toCooccurrenceResults(cooccurrences),
	})
}

// Build handles POST /api/v1/network/build - the full pipeline run
func (h *NetworkHandler) Build(c *gin.Context) {
	var req dto.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Message: err.Error()})
		return
	}

	maxGap, minSpan, err := req.Thresholds()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Message: err.Error()})
		return
	}

	pipeline, err := cooccur.New(&cooccur.Config{
		MaxGap:         maxGap,
		MinSpan:        minSpan,
		MaxConcurrency: h.maxConcurrency,
	}, h.logger)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid thresholds", Message: err.Error()})
		return
	}

	result, err := pipeline.Run(c.Request.Context(), toEvents(req.Events))
	if err != nil {
		h.logger.Error("pipeline run failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "pipeline run failed", Message: err.Error()})
		return
	}

	response := dto.BuildResponse{Cooccurrences: len(result.Cooccurrences)}
	if result.SystematicGraph != nil {
		response.Systematic = toGraphResult(result.SystematicGraph)
	}
	if result.RandomGraph != nil {
		response.Random = toGraphResult(result.RandomGraph)
	}
	c.JSON(http.StatusOK, response)
}

// Graph handles POST /api/v1/network/graph - an unclassified contact graph
func (h *NetworkHandler) Graph(c *gin.Context) {
	var req dto.GraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Message: err.Error()})
		return
	}

	maxGap, err := req.MaxGapDuration()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Message: err.Error()})
		return
	}

	pipeline, err := cooccur.New(&cooccur.Config{MaxGap: maxGap, MaxConcurrency: h.maxConcurrency}, h.logger)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid thresholds", Message: err.Error()})
		return
	}

	cooccurrences, err := pipeline.Detect(c.Request.Context(), toEvents(req.Events))
	if err != nil {
		h.logger.Error("detection failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "detection failed", Message: err.Error()})
		return
	}

	g, err := pipeline.BuildGraph(cooccurrences)
	if err != nil {
		if errors.Is(err, graph.ErrNoCooccurrences) {
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error:   "no co-occurrences",
				Message: "the event stream produced no contacts within max_gap",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "graph build failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toGraphResult(g))
}

func toEvents(payloads []dto.EventPayload) []types.Event {
	events := make([]types.Event, 0, len(payloads))
	for _, p := range payloads {
		events = append(events, types.Event{
			Index:      p.Index,
			Entity:     p.Entity,
			Time:       p.Time,
			Location:   p.Location,
			Attributes: p.Attributes,
		})
	}
	return events
}

func toEventPayload(event types.Event) dto.EventPayload {
	return dto.EventPayload{
		Index:      event.Index,
		Entity:     event.Entity,
		Time:       event.Time,
		Location:   event.Location,
		Attributes: event.Attributes,
	}
}

func toCooccurrenceResults(cooccurrences []types.Cooccurrence) []dto.CooccurrenceResult {
	results := make([]dto.CooccurrenceResult, 0, len(cooccurrences))
	for _, cc := range cooccurrences {
		results = append(results, dto.CooccurrenceResult{
			Event:      toEventPayload(cc.Event),
			OtherEvent: toEventPayload(cc.OtherEvent),
			TimeDelta:  cc.TimeDelta.String(),
			Time:       cc.Time,
		})
	}
	return results
}

func toGraphResult(g *graph.Graph) *dto.GraphResult {
	result := &dto.GraphResult{FinalDate: g.FinalDate()}
	for _, node := range g.Nodes() {
		result.Nodes = append(result.Nodes, dto.NodeResult{Entity: node.Entity, Time: node.Time})
	}
	for _, edge := range g.Edges() {
		result.Edges = append(result.Edges, dto.EdgeResult{
			Source:   edge.Source,
			Target:   edge.Target,
			Weight:   edge.Weight,
			LastSeen: edge.LastSeen,
		})
	}
	return result
}
