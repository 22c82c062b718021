package participants

import (
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/realtime"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// validateInstagramURL runs the write-time validation pipeline on the URL
// and returns the derived post ID. On failure it writes the field-level
// error response and returns false.
func validateInstagramURL(c *gin.Context, url string) (string, bool) {
	if !utils.IsValidInstagramURL(url) {
		response.ValidationError(c, map[string]string{"instagram_post_url": ErrInvalidInstagramURL})
		return "", false
	}

	postID := utils.ExtractInstagramPostID(url)
	if postID == "" {
		response.ValidationError(c, map[string]string{"instagram_post_url": ErrNoPostID})
		return "", false
	}

	return postID, true
}

// GetParticipants retrieves all participants ranked by likes
// @Summary List participants
// @Description Get all participants ordered by likes descending
// @Tags Participants
// @Produce json
// @Success 200 {array} models.Participant
// @Failure 500 {object} map[string]string
// @Router /participants [get]
func GetParticipants(c *gin.Context) {
	var participants []models.Participant
	if err := services.GetRanking(database.Public.DB, &participants); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetRanking)
		return
	}

	c.JSON(http.StatusOK, participants)
}

// CreateParticipant creates a new competition entry
// @Summary Create participant
// @Description Create a participant; the Instagram post ID is derived from the post URL
// @Tags Participants
// @Accept json
// @Produce json
// @Param request body CreateParticipantRequest true "Participant data"
// @Success 201 {object} models.Participant
// @Failure 400,401 {object} map[string]string
// @Router /participants [post]
// @Security Cookie
func CreateParticipant(c *gin.Context) {
	var req CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	postID, ok := validateInstagramURL(c, req.InstagramPostURL)
	if !ok {
		return
	}

	likes := 0
	if req.Likes != nil {
		if *req.Likes < 0 {
			response.ValidationError(c, map[string]string{"likes": ErrNegativeLikes})
			return
		}
		likes = *req.Likes
	}

	participant := models.Participant{
		Name:             req.Name,
		VideoTitle:       req.VideoTitle,
		InstagramPostID:  postID,
		InstagramPostURL: req.InstagramPostURL,
		ThumbnailURL:     req.ThumbnailURL,
		Likes:            likes,
	}

	start := time.Now()
	if err := database.Service.Create(&participant).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToCreate)
		return
	}
	metrics.RecordDBOperation("insert", "participants", start)
	metrics.ParticipantMutations.WithLabelValues("created").Inc()

	realtime.Broadcast(realtime.ParticipantUpdate{
		UpdateType:  "created",
		Participant: &participant,
		ID:          participant.ID,
	})

	c.JSON(http.StatusCreated, participant)
}

// UpdateParticipant applies a partial update to a participant
// @Summary Update participant
// @Description Update participant fields; a new Instagram URL re-derives the post ID
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID"
// @Param request body UpdateParticipantRequest true "Fields to update"
// @Success 200 {object} models.Participant
// @Failure 400,401,404 {object} map[string]string
// @Router /participants/{id} [put]
// @Security Cookie
func UpdateParticipant(c *gin.Context) {
	id := c.Param("id")

	var participant models.Participant
	if err := database.Service.Where("id = ?", id).First(&participant).Error; err != nil {
		response.NotFound(c, ErrParticipantNotFound)
		return
	}

	var req UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.InstagramPostURL != nil {
		postID, ok := validateInstagramURL(c, *req.InstagramPostURL)
		if !ok {
			return
		}
		participant.InstagramPostURL = *req.InstagramPostURL
		participant.InstagramPostID = postID
	}

	if req.Name != nil {
		participant.Name = *req.Name
	}
	if req.VideoTitle != nil {
		participant.VideoTitle = *req.VideoTitle
	}
	if req.ThumbnailURL != nil {
		participant.ThumbnailURL = req.ThumbnailURL
	}
	if req.Likes != nil {
		if *req.Likes < 0 {
			response.ValidationError(c, map[string]string{"likes": ErrNegativeLikes})
			return
		}
		participant.Likes = *req.Likes
	}

	start := time.Now()
	if err := database.Service.Save(&participant).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdate)
		return
	}
	metrics.RecordDBOperation("update", "participants", start)
	metrics.ParticipantMutations.WithLabelValues("updated").Inc()

	realtime.Broadcast(realtime.ParticipantUpdate{
		UpdateType:  "updated",
		Participant: &participant,
		ID:          participant.ID,
	})

	c.JSON(http.StatusOK, participant)
}

// DeleteParticipant permanently removes a participant
// @Summary Delete participant
// @Description Delete a participant by id; a missing id reports not-found
// @Tags Participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} map[string]string
// @Failure 401,404 {object} map[string]string
// @Router /participants/{id} [delete]
// @Security Cookie
func DeleteParticipant(c *gin.Context) {
	id := c.Param("id")

	start := time.Now()
	result := database.Service.Where("id = ?", id).Delete(&models.Participant{})
	if result.Error != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToDelete)
		return
	}
	// Missing rows report not-found to surface client bugs instead of
	// silently succeeding
	if result.RowsAffected == 0 {
		response.NotFound(c, ErrParticipantNotFound)
		return
	}
	metrics.RecordDBOperation("delete", "participants", start)
	metrics.ParticipantMutations.WithLabelValues("deleted").Inc()

	realtime.Broadcast(realtime.ParticipantUpdate{
		UpdateType: "deleted",
		ID:         id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted"})
}
