package http

import (
	"errors"
	"fmt"
	"net/http"

	membershipmodels "nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/perks/models"
	"nft-treasury-backend/internal/features/perks/service"

	"github.com/gin-gonic/gin"
)

type PerksHandler struct {
	service service.PerksService
}

func NewPerksHandler(service service.PerksService) *PerksHandler {
	return &PerksHandler{
		service: service,
	}
}

func (h *PerksHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/gold-vip-events", h.listVIPEvents)
	router.POST("/gold-event-rsvp", h.rsvp)
	router.POST("/discord-invite", h.discordInvite)
	router.POST("/gold-airdrop", h.goldAirdrop)
	router.GET("/gold-analytics/:address", h.goldAnalytics)
}

// @Summary List Gold VIP events
// @Tags perks
// @Produce json
// @Success 200 {array} models.VIPEvent
// @Router /gold-vip-events [get]
func (h *PerksHandler) listVIPEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListVIPEvents(c.Request.Context()))
}

// @Summary RSVP for a Gold VIP event
// @Description Gold membership is required. A confirmation email is sent best-effort.
// @Tags perks
// @Accept json
// @Produce json
// @Param request body models.RSVPRequest true "RSVP request"
// @Success 200 {object} map[string]interface{} "Confirmation"
// @Failure 400 {object} membershipmodels.ErrorResponse "Invalid request"
// @Failure 403 {object} membershipmodels.ErrorResponse "Gold membership required"
// @Failure 404 {object} membershipmodels.ErrorResponse "Unknown event"
// @Router /gold-event-rsvp [post]
func (h *PerksHandler) rsvp(c *gin.Context) {
	var input models.RSVPRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, membershipmodels.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.service.RSVP(c.Request.Context(), input.EventID, input.UserAddress)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEvent):
			c.AbortWithStatusJSON(http.StatusNotFound, membershipmodels.ErrorResponse{Error: "Unknown event"})
		case errors.Is(err, service.ErrGoldRequired):
			c.AbortWithStatusJSON(http.StatusForbidden, membershipmodels.ErrorResponse{Error: "Gold membership required for VIP events"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, membershipmodels.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     fmt.Sprintf("RSVP confirmed for %s", event.Title),
		"eventId":     event.ID,
		"userAddress": input.UserAddress,
	})
}

// @Summary Send a Discord community invite
// @Description Silver or Gold membership with a usable email is required.
// @Tags perks
// @Accept json
// @Produce json
// @Param request body models.DiscordInviteRequest true "Invite request"
// @Success 200 {object} map[string]interface{} "Invite sent"
// @Failure 400 {object} membershipmodels.ErrorResponse "Invalid request or missing email"
// @Failure 403 {object} membershipmodels.ErrorResponse "Tier requirement not met"
// @Router /discord-invite [post]
func (h *PerksHandler) discordInvite(c *gin.Context) {
	var input models.DiscordInviteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, membershipmodels.ErrorResponse{Error: err.Error()})
		return
	}

	email, err := h.service.SendDiscordInvite(c.Request.Context(), input.UserAddress, input.Tier)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMembershipRequired):
			c.AbortWithStatusJSON(http.StatusForbidden, membershipmodels.ErrorResponse{Error: "Silver or Gold membership required for Discord access"})
		case errors.Is(err, service.ErrEmailRequired):
			c.AbortWithStatusJSON(http.StatusBadRequest, membershipmodels.ErrorResponse{Error: "Valid email required for Discord invite"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, membershipmodels.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     fmt.Sprintf("Discord invite sent to %s", email),
		"tier":        input.Tier,
		"userAddress": input.UserAddress,
	})
}

// @Summary Run the monthly Gold airdrop
// @Description Pins the airdrop NFT metadata to IPFS and notifies every Gold member.
// @Tags perks
// @Accept json
// @Produce json
// @Param request body models.AirdropRequest false "Airdrop overrides"
// @Success 200 {object} map[string]interface{} "Airdrop summary"
// @Failure 502 {object} membershipmodels.ErrorResponse "Pinning failed"
// @Router /gold-airdrop [post]
func (h *PerksHandler) goldAirdrop(c *gin.Context) {
	// The body is optional; defaults cover the usual monthly run.
	var input models.AirdropRequest
	_ = c.ShouldBindJSON(&input)

	result, err := h.service.RunGoldAirdrop(c.Request.Context(), input.NFTTitle, input.NFTDescription)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, membershipmodels.ErrorResponse{Error: err.Error()})
		return
	}

	if result.MemberCount == 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "No members found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    fmt.Sprintf("Gold airdrop processed for %d members", result.MemberCount),
		"tokenURI":   result.TokenURI,
		"recipients": result.Recipients,
	})
}

// @Summary Gold VIP analytics
// @Description Returns zeroed analytics for addresses without Gold membership.
// @Tags perks
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} models.GoldAnalytics
// @Failure 500 {object} membershipmodels.ErrorResponse "Store failure"
// @Router /gold-analytics/{address} [get]
func (h *PerksHandler) goldAnalytics(c *gin.Context) {
	analytics, err := h.service.GoldAnalytics(c.Request.Context(), c.Param("address"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, membershipmodels.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, analytics)
}
