package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"aqi-notifier/internal/models"
)

// handleCron godoc
// @Summary Run the daily digest
// @Description Fetches today's weather and air-quality forecast for the configured location,
// @Description composes the report and sends it to Telegram. With dry=1 the report is returned without delivery.
// @Tags Digest
// @Produce json
// @Param dry query string false "Skip delivery" Enums(1, true)
// @Success 200 {object} models.Response "Report composed"
// @Failure 405 {object} models.ErrorResponse "Method not allowed"
// @Failure 500 {object} models.ErrorResponse "Configuration, upstream or delivery failure"
// @Router /api/cron [get]
func (r *routes) handleCron(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		c.Set(fiber.HeaderAllow, fiber.MethodGet)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse{
			Error: "Method Not Allowed",
		})
	}

	dryRun := isDryRun(c.Query("dry"))

	result, err := r.service.Run(c.UserContext(), dryRun)
	if err != nil {
		r.l.Error(err, map[string]any{
			"run_id":  result.RunID,
			"dry_run": dryRun,
			"path":    c.Path(),
		})

		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: errors.Cause(err).Error(),
		})
	}

	return c.JSON(models.Response{
		OK:      true,
		Message: result.Message,
		DryRun:  result.DryRun,
	})
}

// isDryRun accepts exactly "1" or "true".
func isDryRun(v string) bool {
	return v == "1" || v == "true"
}
