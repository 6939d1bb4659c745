package crud

import (
	"errors"
	"mime/multipart"
	"strconv"

	"go-rental/internal/rule"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Controller exposes one entity collection over REST. Every panel of the
// console is this same surface with a different schema.
type Controller[T Entity] struct {
	Service   *Service[T]
	Schema    Schema
	newEntity func() T
}

func NewController[T Entity](service *Service[T], schema Schema, newEntity func() T) *Controller[T] {
	return &Controller[T]{
		Service:   service,
		Schema:    schema,
		newEntity: newEntity,
	}
}

// Setup registers the CRUD routes. The documents route must come before the
// bare :id delete so it is not shadowed.
func (ctrl *Controller[T]) Setup(app *fiber.App) {
	g := app.Group(ctrl.Schema.Path)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id/documents", ctrl.DeleteDocument)
	g.Delete("/:id", ctrl.Delete)
}

func (ctrl *Controller[T]) List(c *fiber.Ctx) error {
	for _, key := range []string{"page", "limit"} {
		if v := c.Query(key); v != "" && !rule.NumericAtLeast(v, 1) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid " + key + " parameter",
			})
		}
	}

	var limit, offset int64
	if v := c.Query("limit"); v != "" {
		limit, _ = strconv.ParseInt(v, 10, 64)
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		offset = (page - 1) * limit
	}

	items, err := ctrl.Service.List(c.UserContext(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(items)
}

func (ctrl *Controller[T]) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid record ID",
		})
	}

	entity, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Record not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entity)
}

func (ctrl *Controller[T]) Create(c *fiber.Ctx) error {
	entity := ctrl.newEntity()
	if err := c.BodyParser(entity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	errs, err := ctrl.Service.Create(c.UserContext(), entity, ctrl.uploadedFiles(c))
	if errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": errs,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}

func (ctrl *Controller[T]) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid record ID",
		})
	}

	entity := ctrl.newEntity()
	if err := c.BodyParser(entity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	errs, err := ctrl.Service.Update(c.UserContext(), id, entity, ctrl.uploadedFiles(c))
	if errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": errs,
		})
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Record not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entity)
}

func (ctrl *Controller[T]) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid record ID",
		})
	}

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Record not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Record deleted successfully",
	})
}

// DeleteDocument removes one attachment. The payload carries a name or a URL
// depending on the entity schema.
func (ctrl *Controller[T]) DeleteDocument(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid record ID",
		})
	}

	var body struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	identifier := body.Name
	if ctrl.Schema.DeleteDocBy == DeleteDocByURL {
		identifier = body.URL
	}
	if !rule.RequiredNonBlank(identifier) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing document " + ctrl.Schema.DeleteDocBy,
		})
	}

	if err := ctrl.Service.RemoveDocument(c.UserContext(), id, identifier); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Document deleted successfully",
	})
}

func (ctrl *Controller[T]) uploadedFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["documents"]
}
