package http

import (
	"errors"
	"net/http"

	membershipmodels "nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/pinning/service"
	"nft-treasury-backend/internal/platform/pinata"

	"github.com/gin-gonic/gin"
)

type PinningHandler struct {
	service service.PinningService
}

func NewPinningHandler(service service.PinningService) *PinningHandler {
	return &PinningHandler{
		service: service,
	}
}

func (h *PinningHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/pinata-upload", h.uploadFile)
	router.POST("/pinata-metadata", h.uploadMetadata)
}

// @Summary Pin an NFT asset file to IPFS
// @Tags pinning
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Asset file"
// @Success 200 {object} pinata.PinResult
// @Failure 400 {object} membershipmodels.ErrorResponse "No file uploaded"
// @Failure 502 {object} membershipmodels.ErrorResponse "Pinata rejected the upload"
// @Router /pinata-upload [post]
func (h *PinningHandler) uploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, membershipmodels.ErrorResponse{Error: "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, membershipmodels.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	result, err := h.service.PinFile(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		abortPinError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Pin NFT metadata JSON to IPFS
// @Tags pinning
// @Accept json
// @Produce json
// @Param metadata body map[string]interface{} true "Metadata document"
// @Success 200 {object} pinata.PinResult
// @Failure 400 {object} membershipmodels.ErrorResponse "Invalid metadata"
// @Failure 502 {object} membershipmodels.ErrorResponse "Pinata rejected the upload"
// @Router /pinata-metadata [post]
func (h *PinningHandler) uploadMetadata(c *gin.Context) {
	var metadata map[string]interface{}
	if err := c.ShouldBindJSON(&metadata); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, membershipmodels.ErrorResponse{Error: "Invalid metadata"})
		return
	}

	result, err := h.service.PinMetadata(c.Request.Context(), metadata)
	if err != nil {
		abortPinError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func abortPinError(c *gin.Context, err error) {
	var apiErr *pinata.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(http.StatusBadGateway, membershipmodels.ErrorResponse{Error: apiErr.Error()})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, membershipmodels.ErrorResponse{Error: err.Error()})
}
