package restapi

import (
	"net/http"

	"capy_automator/internal/app/port"
	"capy_automator/internal/app/service"
	"capy_automator/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// ResultView is the API shape of one wallet result.
type ResultView struct {
	entity.PipelineResult
	FailedStage string `json:"failedStage,omitempty"`
	Error       string `json:"error,omitempty"`
}

// APIResultsResponse определяет структуру ответа для эндпоинтов результатов.
type APIResultsResponse struct {
	Data struct {
		Results []ResultView `json:"results"`
	} `json:"data"`
	Summary       service.RunSummary `json:"summary"`
	StatusMessage string             `json:"status_message"`
}

// ResultsHandler serves the wallet results recorded so far.
type ResultsHandler struct {
	store port.ResultStore
}

// NewResultsHandler создает новый экземпляр ResultsHandler.
func NewResultsHandler(store port.ResultStore) *ResultsHandler {
	return &ResultsHandler{store: store}
}

// GetResultsHandler returns every recorded result.
func (h *ResultsHandler) GetResultsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.respond(h.store.All(), h.store.All()))
}

// GetFailedResultsHandler returns only failed results. The summary still covers the whole run.
func (h *ResultsHandler) GetFailedResultsHandler(c *gin.Context) {
	all := h.store.All()
	c.JSON(http.StatusOK, h.respond(failedOnly(all), all))
}

func (h *ResultsHandler) respond(results, all []entity.PipelineResult) APIResultsResponse {
	var resp APIResultsResponse
	resp.Data.Results = make([]ResultView, 0, len(results))
	for _, r := range results {
		view := ResultView{PipelineResult: r, Error: r.ErrorMessage()}
		if r.FailedStage != nil {
			view.FailedStage = r.FailedStage.String()
		}
		resp.Data.Results = append(resp.Data.Results, view)
	}
	resp.Summary = service.Summarize(all)

	switch {
	case len(all) == 0:
		resp.StatusMessage = "No wallets processed yet."
	case resp.Summary.Failed > 0:
		resp.StatusMessage = "Some wallets failed. Check the error field of each result."
	default:
		resp.StatusMessage = "All processed wallets succeeded."
	}
	return resp
}

func failedOnly(results []entity.PipelineResult) []entity.PipelineResult {
	out := make([]entity.PipelineResult, 0)
	for _, r := range results {
		if !r.Succeeded() {
			out = append(out, r)
		}
	}
	return out
}
