package settings

import (
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// defaultSettings is the display state served when the settings row cannot
// be read; the public site prefers stale defaults over an error page
func defaultSettings() models.Setting {
	return models.Setting{
		ID:          models.SettingsID,
		Theme:       "AI Videography Challenge",
		Description: "Voting is live! Support your favorite creators by liking their posts on Instagram.",
		TargetDate:  time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Hour),
	}
}

// GetSettings retrieves the competition settings
// @Summary Get settings
// @Description Get the active competition settings
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Setting
// @Router /settings [get]
func GetSettings(c *gin.Context) {
	var settings models.Setting
	if err := database.Public.Where("id = ?", models.SettingsID).First(&settings).Error; err != nil {
		c.JSON(http.StatusOK, defaultSettings())
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings updates the single settings record in place
// @Summary Update settings
// @Description Update theme, description and target date of the competition
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Settings data"
// @Success 200 {object} models.Setting
// @Failure 400,401 {object} map[string]string
// @Router /settings [put]
// @Security Cookie
func UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	targetDate, err := time.Parse(time.RFC3339, req.TargetDate)
	if err != nil {
		response.ValidationError(c, map[string]string{"target_date": ErrInvalidTargetDate})
		return
	}

	start := time.Now()
	// Map update rather than struct update: all three submitted fields must
	// reach the row even when one carries a zero value, which GORM skips
	// for struct updates
	updates := map[string]interface{}{
		"theme":       req.Theme,
		"description": req.Description,
		"target_date": targetDate.UTC(),
	}
	result := database.Service.Model(&models.Setting{}).
		Where("id = ?", models.SettingsID).
		Updates(updates)
	if result.Error != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdate)
		return
	}
	// The row is seeded at deployment; recreate it if it went missing
	if result.RowsAffected == 0 {
		row := models.Setting{
			ID:          models.SettingsID,
			Theme:       req.Theme,
			Description: req.Description,
			TargetDate:  targetDate.UTC(),
		}
		if err := database.Service.Create(&row).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedToUpdate)
			return
		}
	}
	metrics.RecordDBOperation("update", "settings", start)

	var settings models.Setting
	if err := database.Service.Where("id = ?", models.SettingsID).First(&settings).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdate)
		return
	}

	c.JSON(http.StatusOK, settings)
}
