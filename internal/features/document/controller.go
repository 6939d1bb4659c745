package document

import (
	"github.com/gofiber/fiber/v2"
)

type DocumentController struct {
	Service DocumentService
}

func NewDocumentController(service DocumentService) *DocumentController {
	return &DocumentController{Service: service}
}

// ListByRecord godoc
// @Summary List record documents
// @Description Get all documents attached to a record, with resolved preview URLs
// @Tags documents
// @Produce json
// @Param module path string true "Module Name"
// @Param recordId path string true "Record ID"
// @Success 200 {array} Document
// @Failure 500 {object} map[string]interface{}
// @Router /api/documents/{module}/{recordId} [get]
func (ctrl *DocumentController) ListByRecord(c *fiber.Ctx) error {
	module := c.Params("module")
	recordID := c.Params("recordId")

	docs, err := ctrl.Service.ListByRecord(c.UserContext(), module, recordID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error retrieving documents",
		})
	}

	return c.JSON(docs)
}
