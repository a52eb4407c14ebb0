package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangam/bloodbank/internal/core/domain"
	"github.com/sangam/bloodbank/internal/core/ports"
)

type DonorHandler struct {
	donorService ports.DonorService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

func NewDonorHandler(
	donorService ports.DonorService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
		logger:       logger,
		metrics:      metrics,
	}
}

func (h *DonorHandler) ShowDonorForm(c *gin.Context) {
	c.HTML(http.StatusOK, "donor_form.html", gin.H{})
}

func (h *DonorHandler) ShowSearchForm(c *gin.Context) {
	c.HTML(http.StatusOK, "search_donor.html", gin.H{})
}

// RegisterDonor saves the donor form for the logged-in user. Validation
// and conflict failures come back as plain text the form page shows
// verbatim.
func (h *DonorHandler) RegisterDonor(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, ok := getSessionPayload(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	age, err := strconv.Atoi(c.PostForm("age"))
	if err != nil {
		c.String(http.StatusBadRequest, "Donor age must be 18 or above")
		return
	}

	donor := &domain.DonorProfile{
		UserID:        payload.UserID,
		Age:           age,
		BloodGroup:    domain.BloodGroup(c.PostForm("blood_group")),
		ContactNumber: c.PostForm("contact_number"),
		Location:      c.PostForm("location"),
		Pincode:       c.PostForm("pincode"),
	}

	if _, err := h.donorService.Register(c.Request.Context(), donor); err != nil {
		switch {
		case domain.IsValidation(err):
			c.String(http.StatusBadRequest, "%s", capitalizeFirst(err.Error()))
		case errors.Is(err, domain.ErrDonorAlreadyRegistered):
			c.String(http.StatusConflict, "You have already registered as a donor")
		default:
			h.logger.Error("Failed to save donor details", map[string]interface{}{
				"error":   err.Error(),
				"user_id": payload.UserID,
			})
			c.String(http.StatusInternalServerError, "Error saving donor details")
		}
		return
	}

	c.String(http.StatusOK, "Donor details added successfully")
}

// SearchDonors resolves the search form and renders the donor list with
// an explanatory message. Zero matches still renders the list page.
func (h *DonorHandler) SearchDonors(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bloodGroup := domain.BloodGroup(c.PostForm("blood_group"))
	location := c.PostForm("location")
	pincode := c.PostForm("pincode")

	result, err := h.donorService.Search(c.Request.Context(), bloodGroup, location, pincode)
	if err != nil {
		if domain.IsValidation(err) {
			c.String(http.StatusBadRequest, "%s", capitalizeFirst(err.Error()))
			return
		}
		h.logger.Error("Donor search failed", map[string]interface{}{
			"error":       err.Error(),
			"blood_group": bloodGroup,
		})
		c.String(http.StatusInternalServerError, "Server error while searching")
		return
	}

	c.HTML(http.StatusOK, "donor_list.html", gin.H{
		"donors":  result.Donors,
		"message": result.Message,
	})
}
