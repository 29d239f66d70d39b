package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/bitbingo/stadsbingo/internal/stadsbingo"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Stadsbingo API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Stadsbingo photo hunt.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/register
	postRegister, _ := r.NewOperationContext(http.MethodPost, "/api/register")
	postRegister.SetSummary("Register a team")
	postRegister.SetDescription("Registers a new team and makes it the current team.")
	postRegister.AddReqStructure(RegisterRequest{})
	postRegister.AddRespStructure(stadsbingo.Team{}, openapi.WithHTTPStatus(http.StatusCreated))
	postRegister.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postRegister)

	// GET /api/quiz/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/quiz/state")
	getState.SetSummary("Get quiz state")
	getState.SetDescription("Returns the current team's progression through the question catalog.")
	getState.AddRespStructure(QuizStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getState)

	// GET /api/quiz/questions
	listQuestions, _ := r.NewOperationContext(http.MethodGet, "/api/quiz/questions")
	listQuestions.SetSummary("List questions")
	listQuestions.SetDescription("Returns the full question catalog in order.")
	listQuestions.AddRespStructure([]stadsbingo.Question{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listQuestions)

	// GET /api/quiz/questions/{index}
	getQuestion, _ := r.NewOperationContext(http.MethodGet, "/api/quiz/questions/{index}")
	getQuestion.SetSummary("Get question by index")
	getQuestion.SetDescription("Returns the question at a catalog index if the current team may view it.")
	getQuestion.AddRespStructure(stadsbingo.Question{}, openapi.WithHTTPStatus(http.StatusOK))
	getQuestion.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getQuestion.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getQuestion)

	// POST /api/quiz/submissions
	postSubmission, _ := r.NewOperationContext(http.MethodPost, "/api/quiz/submissions")
	postSubmission.SetSummary("Submit a photo")
	postSubmission.SetDescription("Creates or replaces the current team's submission for a question. Replacing resets the rating.")
	postSubmission.AddReqStructure(SubmitRequest{})
	postSubmission.AddRespStructure(SubmitResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSubmission.AddRespStructure(SubmitResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSubmission.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSubmission.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postSubmission)

	// GET /api/review/submissions
	listSubmissions, _ := r.NewOperationContext(http.MethodGet, "/api/review/submissions")
	listSubmissions.SetSummary("List submissions")
	listSubmissions.SetDescription("Returns all submissions with team and question context. Supports a status filter.")
	listSubmissions.AddRespStructure([]ReviewSubmission{}, openapi.WithHTTPStatus(http.StatusOK))
	listSubmissions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(listSubmissions)

	// GET /api/review/submissions/{id}
	getSubmission, _ := r.NewOperationContext(http.MethodGet, "/api/review/submissions/{id}")
	getSubmission.SetSummary("Get submission")
	getSubmission.SetDescription("Returns one submission with team and question context.")
	getSubmission.AddRespStructure(ReviewSubmission{}, openapi.WithHTTPStatus(http.StatusOK))
	getSubmission.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSubmission)

	// PUT /api/review/submissions/{id}/rating
	putRating, _ := r.NewOperationContext(http.MethodPut, "/api/review/submissions/{id}/rating")
	putRating.SetSummary("Rate a submission")
	putRating.SetDescription("Sets a submission's rating: null for pending, 0 for rejected, a positive integer for approved.")
	putRating.AddReqStructure(RateRequest{})
	putRating.AddRespStructure(stadsbingo.Submission{}, openapi.WithHTTPStatus(http.StatusOK))
	putRating.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putRating.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putRating)

	// GET /api/review/scores
	getScores, _ := r.NewOperationContext(http.MethodGet, "/api/review/scores")
	getScores.SetSummary("Scoreboard")
	getScores.SetDescription("Returns per-team score aggregates, highest total first.")
	getScores.AddRespStructure(ScoreboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getScores)

	// GET /api/review/stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/review/stats")
	getStats.SetSummary("Dashboard stats")
	getStats.SetDescription("Returns activity totals and the most recent submissions.")
	getStats.AddRespStructure(StatsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStats)

	// DELETE /api/review/data
	deleteData, _ := r.NewOperationContext(http.MethodDelete, "/api/review/data")
	deleteData.SetSummary("Clear all data")
	deleteData.SetDescription("Removes all teams, submissions and the current team in one transaction.")
	deleteData.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(deleteData)

	// GET /api/review/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/review/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of submission and rating updates. Pass team as query parameter to scope to one team.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
