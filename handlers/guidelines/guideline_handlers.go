package guidelines

import (
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetGuidelines retrieves the publicly visible guidelines
// @Summary List guidelines
// @Description Get active guidelines ordered by display order
// @Tags Guidelines
// @Produce json
// @Success 200 {array} models.Guideline
// @Failure 500 {object} map[string]string
// @Router /guidelines [get]
func GetGuidelines(c *gin.Context) {
	var guidelines []models.Guideline
	if err := services.GetActiveGuidelines(database.Public.DB, &guidelines); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToFetch)
		return
	}

	c.JSON(http.StatusOK, guidelines)
}

// ReplaceGuidelines atomically replaces the entire guideline set
// @Summary Replace guidelines
// @Description Replace all guidelines with the submitted ordered list
// @Tags Guidelines
// @Accept json
// @Produce json
// @Param request body ReplaceGuidelinesRequest true "Full desired guideline list"
// @Success 200 {object} map[string]bool
// @Failure 400,401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /guidelines [post]
// @Security Cookie
func ReplaceGuidelines(c *gin.Context) {
	var req ReplaceGuidelinesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Guidelines == nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	contents := *req.Guidelines

	// Delete-all plus reinsert inside one transaction: membership and order
	// become exactly the submitted list and no partially replaced set is
	// ever visible
	start := time.Now()
	err := database.Service.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Guideline{}).Error; err != nil {
			return err
		}

		if len(contents) == 0 {
			return nil
		}

		rows := make([]models.Guideline, len(contents))
		for i, content := range contents {
			rows[i] = models.Guideline{
				Content:      content,
				DisplayOrder: i + 1,
				IsActive:     true,
			}
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToSave)
		return
	}
	metrics.RecordDBOperation("replace", "guidelines", start)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
