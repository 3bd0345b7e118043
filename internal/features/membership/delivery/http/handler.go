package http

import (
	"errors"
	"fmt"
	"net/http"

	"nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/membership/service"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	service service.MembershipService
}

func NewMembershipHandler(service service.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		service: service,
	}
}

func (h *MembershipHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/bitbadges-webhook", h.handleWebhook)

	benefits := router.Group("/membership-benefits")
	{
		benefits.GET("/:address", h.getMembership)
		benefits.GET("/:address/:tier", h.getBenefits)
	}

	// Legacy route used by the deployed front end.
	router.GET("/gold-benefits/:address", h.getGoldBenefits)
}

// @Summary Ingest a BitBadges claim webhook
// @Description Activates membership benefits for successful, non-simulated badge claims. Simulated and failed claims are acknowledged without activation.
// @Tags membership
// @Accept json
// @Produce json
// @Param payload body models.ClaimWebhook true "Claim notification"
// @Success 200 {object} models.WebhookResponse "Processed (tierActivated is null when nothing was activated)"
// @Failure 400 {object} models.ErrorResponse "Unparseable payload"
// @Failure 401 {object} models.ErrorResponse "Shared secret mismatch"
// @Router /bitbadges-webhook [post]
func (h *MembershipHandler) handleWebhook(c *gin.Context) {
	var payload models.ClaimWebhook
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid webhook payload"})
		return
	}

	outcome, err := h.service.IngestClaim(c.Request.Context(), &payload)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSecret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid webhook secret"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Webhook processing failed"})
		return
	}

	resp := models.WebhookResponse{
		Success:       true,
		TierActivated: outcome.TierActivated,
		Reason:        outcome.Reason,
	}
	if outcome.TierActivated != nil {
		resp.Message = "Webhook processed successfully"
		resp.Benefits = fmt.Sprintf("%s tier benefits activated", *outcome.TierActivated)
	} else {
		resp.Message = "Webhook processed (no benefits activated)"
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List activated memberships for an address
// @Description Returns every tier activated for a wallet address. Lookup is case-insensitive.
// @Tags membership
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} models.MembershipSummary
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /membership-benefits/{address} [get]
func (h *MembershipHandler) getMembership(c *gin.Context) {
	summary, err := h.service.GetMembership(c.Request.Context(), c.Param("address"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Query benefits for an address and tier
// @Description Returns the activated benefit snapshot for one (address, tier) pair. Absence is reported as active=false, never as an error.
// @Tags membership
// @Produce json
// @Param address path string true "Wallet address"
// @Param tier path string true "Tier name (Bronze, Silver or Gold)"
// @Success 200 {object} models.BenefitStatus
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /membership-benefits/{address}/{tier} [get]
func (h *MembershipHandler) getBenefits(c *gin.Context) {
	status, err := h.service.GetBenefits(c.Request.Context(), c.Param("address"), c.Param("tier"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Legacy Gold benefits lookup
// @Tags membership
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} models.LegacyGoldBenefits
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /gold-benefits/{address} [get]
func (h *MembershipHandler) getGoldBenefits(c *gin.Context) {
	status, err := h.service.GetBenefits(c.Request.Context(), c.Param("address"), string(models.TierGold))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.LegacyGoldBenefits{
		HasGoldBenefits: status.Active,
		Benefits:        status.Benefits,
		ClaimedAt:       status.ClaimedAt,
	})
}
