package handler

import (
	"time"

	"github.com/fadilmartias/mentor-match/internal/dto"
	"github.com/fadilmartias/mentor-match/internal/matching"
	"github.com/fadilmartias/mentor-match/internal/middleware"
	"github.com/fadilmartias/mentor-match/internal/usecase"
	"github.com/fadilmartias/mentor-match/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MatchHandler struct {
	uc *usecase.MatchingUsecase
}

func NewMatchHandler(uc *usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/mentees/:id/matches", h.FindMatches)
	app.Get("/mentees/:id/analysis", h.AnalyzeMentee)
	app.Post("/match-tasks", middleware.RateLimiter(1, 4*time.Second), h.SubmitTask)
	app.Get("/match-tasks/:id", h.TaskResult)
	app.Get("/matching-criteria", h.GetCriteria)
	app.Put("/matching-criteria", h.UpdateCriteria)
	app.Post("/mentors/:id/embedding", h.CreateEmbedding)
	app.Get("/mentors/:id/similar", h.SimilarMentors)
}

func (h *MatchHandler) FindMatches(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	results, err := h.uc.FindMatches(c.Params("id"), nil, limit)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "failed to find matches",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success find matches",
		Data:    results,
	})
}

func (h *MatchHandler) AnalyzeMentee(c *fiber.Ctx) error {
	analysis, err := h.uc.AnalyzeMentee(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "mentee not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success analyze mentee profile",
		Data:    analysis,
	})
}

type submitTaskRequest struct {
	MenteeID   string                  `json:"mentee_id"`
	MaxResults int                     `json:"max_results"`
	Criteria   *matching.CriteriaPatch `json:"criteria"`
}

func (h *MatchHandler) SubmitTask(c *fiber.Ctx) error {
	var req submitTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.MenteeID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "mentee_id is required",
		}, nil)
	}

	id, err := h.uc.SubmitMatchTask(req.MenteeID, req.Criteria, req.MaxResults)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit match task",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Success submit match task",
		Data:    fiber.Map{"id": id, "status": "processing"},
	})
}

func (h *MatchHandler) TaskResult(c *fiber.Ctx) error {
	task, err := h.uc.GetResult(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "match task not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get match task",
		Data:    dto.NewMatchTaskDTO(task),
	})
}

func (h *MatchHandler) GetCriteria(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get matching criteria",
		Data:    h.uc.Criteria(),
	})
}

func (h *MatchHandler) UpdateCriteria(c *fiber.Ctx) error {
	var patch matching.CriteriaPatch
	if err := c.BodyParser(&patch); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update matching criteria",
		Data:    h.uc.UpdateCriteria(patch),
	})
}

func (h *MatchHandler) CreateEmbedding(c *fiber.Ctx) error {
	if err := h.uc.CreateMentorEmbedding(c.Context(), c.Params("id")); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create mentor embedding",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success create mentor embedding",
	})
}

func (h *MatchHandler) SimilarMentors(c *fiber.Ctx) error {
	topK := c.QueryInt("top_k", 5)
	mentors, err := h.uc.SimilarMentors(c.Context(), c.Params("id"), topK)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to search similar mentors",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success search similar mentors",
		Data:    mentors,
	})
}
