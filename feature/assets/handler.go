package assets

import (
	"errors"

	"asset-registry/core/asset"
	"asset-registry/core/identity"
	"asset-registry/core/logger"
	"asset-registry/core/manager"
	"asset-registry/core/serializer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the registry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Get("/", h.HandleList)
	group.Post("/sync", h.HandleSync)
	group.Post("/import", h.HandleImport)
	group.Get("/:id", h.HandleGet)
	group.Get("/:id/children", h.HandleChildren)
	group.Post("/:id/load", h.HandleLoad)

	app.Get("/registry", h.HandleRegistry)
}

// HandleList returns the sorted view.
// @Summary List Assets
// @Description Returns every live asset ordered by type, then case-insensitive filename.
// @Tags assets
// @Produce json
// @Param type query string false "Restrict to one type (directory, model, mesh, texture, none)"
// @Success 200 {array} AssetView
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /assets [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	var typ *asset.Type
	if raw := c.Query("type"); raw != "" {
		parsed, err := asset.ParseType(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		typ = &parsed
	}
	return c.JSON(h.service.List(typ))
}

// HandleGet returns one asset.
// @Summary Get Asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} AssetView
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /assets/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := identity.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid asset id"})
	}

	view, err := h.service.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

// HandleChildren returns the children of a directory.
// @Summary List Children
// @Tags assets
// @Produce json
// @Param id path string true "Directory ID"
// @Success 200 {array} AssetView
// @Failure 400 {object} map[string]string "Invalid ID or not a directory"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /assets/{id}/children [get]
func (h *Handler) HandleChildren(c *fiber.Ctx) error {
	id, err := identity.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid asset id"})
	}

	children, err := h.service.Children(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(children)
}

// HandleSync re-synchronizes a directory.
// @Summary Synchronize
// @Description Re-scans the project or one registered directory, then reconciles. Listing failures are reported, not fatal.
// @Tags assets
// @Produce json
// @Param path query string false "Registered directory path (defaults to the project folder)"
// @Success 200 {object} SyncResult
// @Failure 400 {object} map[string]string "Not a directory or outside of the project"
// @Failure 404 {object} map[string]string "Parent directory not registered"
// @Router /assets/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Sync(c.Context(), c.Query("path"))
	if err != nil {
		return h.fail(c, err)
	}
	if len(result.Failures) > 0 {
		l.Warn("Synchronization incomplete", zap.String("path", result.Path), zap.Strings("failures", result.Failures))
	}
	return c.JSON(result)
}

// HandleImport imports a single file.
// @Summary Import Asset
// @Tags assets
// @Accept json
// @Produce json
// @Param request body ImportRequest true "File to import"
// @Success 201 {object} map[string]string "Imported ID"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Parent not found"
// @Router /assets/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	id, err := h.service.Import(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id.String()})
}

// HandleLoad dispatches the loader of an asset.
// @Summary Load Asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} AssetView
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 422 {object} map[string]string "Not loadable, no loader or unsupported format"
// @Failure 500 {object} map[string]string "Loader failure"
// @Router /assets/{id}/load [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := identity.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid asset id"})
	}

	view, err := h.service.Load(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	l.Info("Asset loaded", zap.String("path", view.Path), zap.Bool("loaded", view.Loaded))
	return c.JSON(view)
}

// HandleRegistry returns the registry.
// @Summary Get Registry
// @Description Returns the persisted path to identity mapping, sorted by path.
// @Tags assets
// @Produce json
// @Success 200 {array} asset.Metadata
// @Router /registry [get]
func (h *Handler) HandleRegistry(c *fiber.Ctx) error {
	return c.JSON(h.service.Registry())
}

// fail maps service errors to HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, manager.ErrAssetNotFound), errors.Is(err, manager.ErrParentNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, manager.ErrNotLoadable), errors.Is(err, manager.ErrNoLoaderRegistered),
		errors.Is(err, serializer.ErrUnsupportedFormat):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, identity.ErrInvalid), errors.Is(err, manager.ErrNotDirectory), errors.Is(err, manager.ErrOutsideProject):
		status = fiber.StatusBadRequest
	}

	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
