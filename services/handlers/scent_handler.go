package handlers

import (
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/shared"
	"github.com/gofiber/fiber/v2"
)

type ScentHandler struct {
	scentSvc ScentServiceInterface
	mediaSvc MediaServiceInterface
}

func NewScentHandler(scentSvc ScentServiceInterface, mediaSvc MediaServiceInterface) *ScentHandler {
	return &ScentHandler{
		scentSvc: scentSvc,
		mediaSvc: mediaSvc,
	}
}

// @Summary List scents
// @Description Active scent catalog
// @Tags scents
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ScentListResponse}
// @Router /api/v1/scents [get]
func (h *ScentHandler) GetScents(c *fiber.Ctx) error {
	scents, err := h.scentSvc.GetScents()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", scents)
}

// @Summary Get collection
// @Description The user's active training collection
// @Tags scents
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.CollectionResponse}
// @Router /api/v1/collection [get]
func (h *ScentHandler) GetCollection(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	collection, err := h.scentSvc.GetCollection(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", collection)
}

// @Summary Add to collection
// @Description Add a catalog scent to the user's collection
// @Tags scents
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param addRequest body dto.AddScentRequest true "Scent to add"
// @Success 200 {object} shared.Response{data=dto.CollectionResponse}
// @Router /api/v1/collection [post]
func (h *ScentHandler) AddToCollection(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.AddScentRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Scent id is required")
	}

	collection, err := h.scentSvc.AddToCollection(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", collection)
}

// @Summary Remove from collection
// @Description Remove a scent from the user's collection
// @Tags scents
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param scentId path string true "Scent ID"
// @Success 200 {object} shared.Response{data=dto.CollectionResponse}
// @Router /api/v1/collection/{scentId} [delete]
func (h *ScentHandler) RemoveFromCollection(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	scentID := c.Params("scentId")

	collection, err := h.scentSvc.RemoveFromCollection(userID, scentID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", collection)
}

// @Summary Upload scent image
// @Description Replace the catalog image for a scent
// @Tags scents
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param scentId path string true "Scent ID"
// @Param image formData file true "Scent image"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/scents/{scentId}/image [post]
func (h *ScentHandler) UploadScentImage(c *fiber.Ctx) error {
	scentID := c.Params("scentId")

	file, err := c.FormFile("image")
	if err != nil {
		return shared.NewBadRequestError(err, "Image file is required")
	}

	upload, err := h.mediaSvc.UploadScentImage(scentID, file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", upload)
}
