package customer

import (
	"go-rental/internal/common/crud"
	"go-rental/internal/database"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/document"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var schema = crud.Schema{
	Module:      "customers",
	Path:        "/api/customers",
	Collection:  "customers",
	DeleteDocBy: crud.DeleteDocByName,
}

func NewCustomerRepository(mongodb *database.MongodbDB) *crud.Repository[*Customer] {
	return crud.NewRepository(mongodb, schema.Collection, func() *Customer { return &Customer{} })
}

func NewCustomerService(repo *crud.Repository[*Customer], docs document.DocumentService, auditSvc audit.AuditService, logger *zap.Logger) *crud.Service[*Customer] {
	return crud.NewService(repo, docs, auditSvc, schema, logger)
}

func NewCustomerController(service *crud.Service[*Customer]) *crud.Controller[*Customer] {
	return crud.NewController(service, schema, func() *Customer { return &Customer{} })
}

type CustomerApi struct {
	controller *crud.Controller[*Customer]
}

func NewCustomerApi(controller *crud.Controller[*Customer]) *CustomerApi {
	return &CustomerApi{controller: controller}
}

func (h *CustomerApi) Setup(app *fiber.App) {
	h.controller.Setup(app)
}
