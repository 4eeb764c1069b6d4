package integrity

import (
	"github.com/mvqn/ucrm-plugin-xero/core/logger"
	"github.com/mvqn/ucrm-plugin-xero/feature/integrity/checks"

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
	var _ = checks.MapReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/maps", h.HandleMapsCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/history", h.HandleHistoryCheck)
}

// HandleIntegrityCheck runs every check and combines the reports.
// @Summary Run All Integrity Checks
// @Description Performs the map, storage and history checks and combines their reports.
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

	report["maps"] = h.service.CheckMaps(ctx)

	if exists, err := h.service.CheckBucket(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = map[string]interface{}{"status": "ok", "exists": exists}
	}

	report["history"] = h.service.CheckHistory(ctx)

	return c.JSON(report)
}

// HandleMapsCheck checks the persisted correlation maps.
// @Summary Check Correlation Maps
// @Description Loads every correlation map and reports entries without identifiers and identifiers stored under several names.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {array} checks.MapReport "Map Reports"
// @Router /integrity/maps [get]
func (h *Handler) HandleMapsCheck(c *fiber.Ctx) error {
	reports := h.service.CheckMaps(c.Context())
	for _, r := range reports {
		if r.Status != "ok" {
			logger.WithRayID(h.service.logger, c).Warn("Correlation map needs attention",
				zap.String("kind", r.Kind),
				zap.String("status", r.Status))
		}
	}
	return c.JSON(reports)
}

// HandleStorageCheck checks and optionally creates the map bucket.
// @Summary Check Storage
// @Description Checks if the map bucket exists. Optionally creates it.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	exists, err := h.service.CheckBucket(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !exists && fix {
		l.Info("Attempting to create missing bucket")
		if err := h.service.FixBucket(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "fixed", "exists": true})
	}

	return c.JSON(fiber.Map{"status": "checked", "exists": exists})
}

// HandleHistoryCheck checks the run history schema.
// @Summary Check Run History Schema
// @Description Checks that the run history table has every column the run model needs.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.HistoryReport "History Report"
// @Router /integrity/history [get]
func (h *Handler) HandleHistoryCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckHistory(c.Context()))
}
