package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"steganer/api"
	"steganer/internal/logging"
	"steganer/pkg/model"
	"steganer/pkg/steganer"
)

// ExtractImageHandler godoc
//
// @Summary Extract the hidden file from an image
// @Description This endpoint will extract the file previously hidden in the supplied image. All errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractImageRequest true "Body with the image to extract the hidden file from"
// @Success 200 {object} api.ExtractImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /extract/image [post]
func ExtractImageHandler(ctx *gin.Context) {
	var requestBody api.ExtractImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image extract request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	hostImage, err := decodeRequestImage(requestBody.EncodedImage)
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	extractedBytes, stats, err := steganer.ExtractFromImage(hostImage)
	if err != nil {
		logger.WithError(err).Error("Error extracting hidden file from image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errExtract)
		return
	}

	logger.With("stats", toHumanizedExtractStats(stats, len(extractedBytes))).Info("Image extraction was successful")

	ctx.JSON(http.StatusOK, api.ExtractImageResponse{
		ExtractedFile: model.OutputFile{
			Name:    requestBody.FileName,
			Content: extractedBytes,
		},
	})
}
