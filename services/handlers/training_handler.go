package handlers

import (
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/shared"
	"github.com/gofiber/fiber/v2"
)

type TrainingHandler struct {
	trainingSvc TrainingServiceInterface
}

func NewTrainingHandler(trainingSvc TrainingServiceInterface) *TrainingHandler {
	return &TrainingHandler{
		trainingSvc: trainingSvc,
	}
}

// @Summary Start training session
// @Description Open a live training session over the selected scents (defaults to the user's collection)
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param startRequest body dto.StartTrainingRequest false "Scent selection"
// @Success 200 {object} shared.Response{data=dto.TrainingStateResponse}
// @Router /api/v1/training/start [post]
func (h *TrainingHandler) StartSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.StartTrainingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return shared.NewBadRequestError(err, "Invalid request")
		}
	}

	state, err := h.trainingSvc.StartSession(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Begin session
// @Description Leave the intro and start the first breathing countdown
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TrainingStateResponse}
// @Router /api/v1/training/begin [post]
func (h *TrainingHandler) BeginSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	state, err := h.trainingSvc.BeginSession(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Get session state
// @Description Snapshot of the live session for rendering
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TrainingStateResponse}
// @Router /api/v1/training/state [get]
func (h *TrainingHandler) GetState(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	state, err := h.trainingSvc.GetState(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Pause session
// @Description Halt the current countdown without losing remaining time
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TrainingStateResponse}
// @Router /api/v1/training/pause [post]
func (h *TrainingHandler) PauseSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	state, err := h.trainingSvc.PauseSession(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Resume session
// @Description Continue a paused countdown
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TrainingStateResponse}
// @Router /api/v1/training/resume [post]
func (h *TrainingHandler) ResumeSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	state, err := h.trainingSvc.ResumeSession(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Restart phase
// @Description Reset the current timed phase to its full duration
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TrainingStateResponse}
// @Router /api/v1/training/restart [post]
func (h *TrainingHandler) RestartPhase(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	state, err := h.trainingSvc.RestartPhase(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Skip phase
// @Description End the current timed phase immediately
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TrainingStateResponse}
// @Router /api/v1/training/skip [post]
func (h *TrainingHandler) SkipPhase(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	state, err := h.trainingSvc.SkipPhase(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Submit rating
// @Description Rate the perceived intensity of the current scent; completing the final scent returns the stored session and updated progress
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param ratingRequest body dto.SubmitRatingRequest true "Perceived intensity"
// @Success 200 {object} shared.Response{data=dto.CompleteSessionResponse}
// @Router /api/v1/training/rate [post]
func (h *TrainingHandler) SubmitRating(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Rating must be between 0 and 10")
	}

	state, completed, err := h.trainingSvc.SubmitRating(userID, req)
	if err != nil {
		return err
	}

	if completed != nil {
		return shared.ResponseJSON(c, fiber.StatusOK, "Session complete", completed)
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Abandon session
// @Description Discard the live session; partial ratings are stored as an incomplete record
// @Tags training
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response
// @Router /api/v1/training/abandon [post]
func (h *TrainingHandler) AbandonSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.trainingSvc.AbandonSession(userID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}
