package document

import (
	"go-rental/internal/config"

	"github.com/gofiber/fiber/v2"
)

type DocumentApi struct {
	controller *DocumentController
	config     *config.Config
}

func NewDocumentApi(controller *DocumentController, config *config.Config) *DocumentApi {
	return &DocumentApi{
		controller: controller,
		config:     config,
	}
}

func (h *DocumentApi) Setup(app *fiber.App) {
	app.Get("/api/documents/:module/:recordId", h.controller.ListByRecord)

	// Stored files are served under /uploads so ResolveURL round-trips
	app.Static(h.config.FSURL, h.config.FSPath)
}
