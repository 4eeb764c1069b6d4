package clients

import (
	"errors"

	"github.com/mvqn/ucrm-plugin-xero/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for client correlations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the clients routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/" + Kind)
	group.Get("/map", h.HandleGetMap)
	group.Get("/pending", h.HandleGetPending)
	group.Get("/lookup/:id", h.HandleLookup)
	group.Get("/runs", h.HandleGetRuns)
}

// HandleGetMap returns the whole clients correlation map.
// @Summary Get clients map
// @Description Returns the persisted clients correlation map, keyed by correlation name.
// @Tags clients
// @Produce json
// @Success 200 {object} map[string]map[string]interface{} "Correlation Map"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /clients/map [get]
func (h *Handler) HandleGetMap(c *fiber.Ctx) error {
	m, err := h.service.Current(c.Context())
	if err != nil {
		return h.fail(c, "Failed to load clients map", err)
	}
	return c.JSON(m)
}

// HandleGetPending returns the names of clients not yet created in Xero.
// @Summary List pending clients
// @Description Lists correlation names that have a UCRM ID but no Xero ID yet.
// @Tags clients
// @Produce json
// @Success 200 {object} map[string]interface{} "Pending names and count"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /clients/pending [get]
func (h *Handler) HandleGetPending(c *fiber.Ctx) error {
	names, err := h.service.Pending(c.Context())
	if err != nil {
		return h.fail(c, "Failed to load pending clients", err)
	}
	return c.JSON(fiber.Map{"pending": names, "count": len(names)})
}

// HandleLookup resolves a UCRM client ID or Xero contact ID to its correlation.
// @Summary Look up a client correlation
// @Description Resolves a numeric UCRM ID or a Xero ID to its correlation entry.
// @Tags clients
// @Produce json
// @Param id path string true "UCRM ID or Xero ID"
// @Success 200 {object} clients.Correlation
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /clients/lookup/{id} [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	corr, err := h.service.Lookup(c.Context(), c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, "Client lookup failed", err)
	}
	return c.JSON(corr)
}

// HandleGetRuns returns recent reconciliation runs. Accepts ?limit=N.
// @Summary List client runs
// @Description Returns the most recent reconciliation runs, newest first.
// @Tags clients
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} history.Run
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /clients/runs [get]
func (h *Handler) HandleGetRuns(c *fiber.Ctx) error {
	runs, err := h.service.Runs(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return h.fail(c, "Failed to list runs", err)
	}
	return c.JSON(runs)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
