package handler

import (
	"github.com/fadilmartias/mentor-match/internal/model"
	"github.com/fadilmartias/mentor-match/internal/repository"
	"github.com/fadilmartias/mentor-match/internal/util"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler serves the plain CRUD surface for mentee and mentor
// profiles. No business logic lives here.
type ProfileHandler struct {
	menteeRepo *repository.MenteeRepository
	mentorRepo *repository.MentorRepository
}

func NewProfileHandler(menteeRepo *repository.MenteeRepository, mentorRepo *repository.MentorRepository) *ProfileHandler {
	return &ProfileHandler{menteeRepo: menteeRepo, mentorRepo: mentorRepo}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/mentees", h.CreateMentee)
	app.Get("/mentees", h.ListMentees)
	app.Get("/mentees/:id", h.GetMentee)
	app.Put("/mentees/:id", h.UpdateMentee)

	app.Post("/mentors", h.CreateMentor)
	app.Get("/mentors", h.ListMentors)
	app.Get("/mentors/:id", h.GetMentor)
	app.Put("/mentors/:id", h.UpdateMentor)
}

func (h *ProfileHandler) CreateMentee(c *fiber.Ctx) error {
	var mentee model.MenteeProfile
	if err := c.BodyParser(&mentee); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid mentee payload",
		}, err)
	}
	if err := h.menteeRepo.Create(&mentee); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create mentee",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create mentee",
		Data:    mentee,
	})
}

func (h *ProfileHandler) ListMentees(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	mentees, pagination, err := h.menteeRepo.List(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list mentees",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success list mentees",
		Data:       mentees,
		Pagination: pagination,
	})
}

func (h *ProfileHandler) GetMentee(c *fiber.Ctx) error {
	mentee, err := h.menteeRepo.FindByID(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "mentee not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get mentee",
		Data:    mentee,
	})
}

func (h *ProfileHandler) UpdateMentee(c *fiber.Ctx) error {
	mentee, err := h.menteeRepo.FindByID(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "mentee not found",
		}, err)
	}
	if err := c.BodyParser(mentee); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid mentee payload",
		}, err)
	}
	if err := h.menteeRepo.Update(mentee); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update mentee",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update mentee",
		Data:    mentee,
	})
}

func (h *ProfileHandler) CreateMentor(c *fiber.Ctx) error {
	var mentor model.MentorProfile
	if err := c.BodyParser(&mentor); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid mentor payload",
		}, err)
	}
	if err := h.mentorRepo.Create(&mentor); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create mentor",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create mentor",
		Data:    mentor,
	})
}

func (h *ProfileHandler) ListMentors(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	mentors, pagination, err := h.mentorRepo.List(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list mentors",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success list mentors",
		Data:       mentors,
		Pagination: pagination,
	})
}

func (h *ProfileHandler) GetMentor(c *fiber.Ctx) error {
	mentor, err := h.mentorRepo.FindByID(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "mentor not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get mentor",
		Data:    mentor,
	})
}

func (h *ProfileHandler) UpdateMentor(c *fiber.Ctx) error {
	mentor, err := h.mentorRepo.FindByID(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "mentor not found",
		}, err)
	}
	if err := c.BodyParser(mentor); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid mentor payload",
		}, err)
	}
	if err := h.mentorRepo.Update(mentor); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update mentor",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update mentor",
		Data:    mentor,
	})
}
