package integrity

import (
	"errors"

	"asset-registry/core/logger"
	"asset-registry/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/registry", h.HandleRegistryCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every integrity check (Registry, Structure, Schema). Checks that do not apply are reported as skipped.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	report["registry"] = h.service.CheckRegistry()

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = statusOf(err)
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = statusOf(err)
	} else {
		report["schema"] = schema
	}

	return c.JSON(report)
}

// HandleRegistryCheck checks and optionally reconciles the registry.
// @Summary Check Registry
// @Description Reports orphaned entries, type mismatches, dangling children and unloaded assets. With fix, reconciles and persists the registry.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Reconcile the registry"
// @Success 200 {object} checks.RegistryReport "Registry Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/registry [get]
func (h *Handler) HandleRegistryCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report := h.service.CheckRegistry()
	if !fix || report.Status == "ok" {
		return c.JSON(report)
	}

	l.Warn("Registry inconsistencies detected",
		zap.Int("orphans", len(report.Orphans)),
		zap.Int("mismatched", len(report.Mismatched)),
	)
	l.Info("Attempting to reconcile the registry")

	summary, err := h.service.FixRegistry(c.Context())
	if err != nil {
		l.Error("Failed to persist reconciled registry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to persist registry",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "fixed",
		"pruned":  report.Orphans,
		"summary": summary,
	})
}

// HandleStructureCheck checks the storage bucket.
// @Summary Check Structure
// @Description Checks that every registered directory still exists in the storage bucket.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 409 {object} map[string]string "Not backed by storage"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckStructure(c.Context())
	if errors.Is(err, ErrNoStorage) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing directories detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSchemaCheck checks the registry table schema.
// @Summary Check Schema
// @Description Checks that the persisted registry table matches the expected model.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 409 {object} map[string]string "No database"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

func statusOf(err error) map[string]interface{} {
	if errors.Is(err, ErrNoStorage) || errors.Is(err, ErrNoDatabase) {
		return map[string]interface{}{"status": "skipped", "reason": err.Error()}
	}
	return map[string]interface{}{"status": "error", "error": err.Error()}
}
