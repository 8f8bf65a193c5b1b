package handlers

import (
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/shared"
	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	sessionSvc SessionServiceInterface
}

func NewSessionHandler(sessionSvc SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
	}
}

// @Summary List sessions
// @Description Get the user's training history, newest first
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.SessionListResponse}
// @Router /api/v1/sessions [get]
func (h *SessionHandler) GetSessions(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	sessions, err := h.sessionSvc.GetSessions(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", sessions)
}

// @Summary Get session
// @Description Get one stored session record
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/sessions/{sessionId} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	sessionID := c.Params("sessionId")

	session, err := h.sessionSvc.GetSession(userID, sessionID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", session)
}

// @Summary Append session
// @Description Store a session completed outside a live run and fold it into progress
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param appendRequest body dto.AppendSessionRequest true "Completed session"
// @Success 200 {object} shared.Response{data=dto.CompleteSessionResponse}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) AppendSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.AppendSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid session payload")
	}

	result, err := h.sessionSvc.AppendSession(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Success", result)
}
