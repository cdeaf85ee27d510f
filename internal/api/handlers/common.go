package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"podcastflow-backend/internal/auth"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// parseUUIDParam parses a path parameter as a UUID, writing a 400 response
// and returning false on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and page_size query parameters with defaults
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// dateRange reads from and to query parameters as YYYY-MM-DD, defaulting to
// the trailing twelve months
func dateRange(c *gin.Context) (from, to time.Time, err error) {
	now := time.Now()
	from = now.AddDate(-1, 0, 0)
	to = now

	if v := c.Query("from"); v != "" {
		from, err = time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, err
		}
	}
	if v := c.Query("to"); v != "" {
		to, err = time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

// requireTenant fetches the resolved tenant placed by the auth middleware,
// writing a 401 response and returning false when absent
func requireTenant(c *gin.Context) (tenant.Tenant, bool) {
	tn, ok := auth.GetTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return tenant.Tenant{}, false
	}
	return tn, true
}

// UpdateStatusRequest carries a status transition for campaigns, orders,
// and invoices
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error, fallback string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case isBusinessError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

func isBusinessError(err error) bool {
	for _, e := range []error{
		apperrors.ErrShowHasOrders,
		apperrors.ErrAgencyHasAdvertisers,
		apperrors.ErrRatePeriodOverlap,
		apperrors.ErrRevenueSharePeriodOverlap,
		apperrors.ErrInvalidStatus,
		apperrors.ErrInvalidStatusTransition,
		apperrors.ErrInvalidFlightDates,
		apperrors.ErrInvalidProbability,
		apperrors.ErrOrderNotEditable,
		apperrors.ErrNoBookedItems,
		apperrors.ErrInsufficientInventory,
		apperrors.ErrInvalidSlug,
		apperrors.ErrSyncAlreadyRunning,
		apperrors.ErrYouTubeQuotaExceeded,
		apperrors.ErrYouTubeNotConfigured,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
