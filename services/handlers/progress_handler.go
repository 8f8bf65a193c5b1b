package handlers

import (
	"io"

	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/shared"
	"github.com/gofiber/fiber/v2"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
	mediaSvc    MediaServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface, mediaSvc MediaServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
		mediaSvc:    mediaSvc,
	}
}

// @Summary Get stats
// @Description Current streak, rolling averages, monthly change, and personal best
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=analytics.Stats}
// @Router /api/v1/stats [get]
func (h *ProgressHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	stats, err := h.progressSvc.GetStats(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", stats)
}

// @Summary List achievements
// @Description Full achievement catalog annotated with the user's unlocks
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.AchievementListResponse}
// @Router /api/v1/achievements [get]
func (h *ProgressHandler) GetAchievements(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	achievements, err := h.progressSvc.GetAchievements(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", achievements)
}

// @Summary List progress moments
// @Description Per-scent observations comparing recent ratings with prior history
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.MomentListResponse}
// @Router /api/v1/moments [get]
func (h *ProgressHandler) GetMoments(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	moments, err := h.progressSvc.GetMoments(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", moments)
}

// @Summary Create share content
// @Description Build shareable text for an achievement, streak, or moment
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param shareRequest body dto.ShareRequest true "Share subject"
// @Success 200 {object} shared.Response{data=dto.ShareResponse}
// @Router /api/v1/share [post]
func (h *ProgressHandler) CreateShareContent(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.ShareRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid share request")
	}

	content, err := h.progressSvc.CreateShareContent(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", content)
}

// @Summary Upload share card
// @Description Store a client-rendered share image and return its URL
// @Tags progress
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param image formData file true "Rendered share card"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/share/card [post]
func (h *ProgressHandler) UploadShareCard(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	file, err := c.FormFile("image")
	if err != nil {
		return shared.NewBadRequestError(err, "Image file is required")
	}

	src, err := file.Open()
	if err != nil {
		return shared.NewBadRequestError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		return shared.NewInternalError(err, "Failed to read uploaded file")
	}

	url, err := h.mediaSvc.UploadShareCard(userID, image, file.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", url)
}
