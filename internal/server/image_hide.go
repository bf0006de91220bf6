package server

import (
	"bytes"
	"image"
	"image/draw"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"

	"steganer/api"
	"steganer/api/steganer/HideImage"
	"steganer/internal/logging"
	"steganer/pkg/config"
	"steganer/pkg/steganer"
)

// HideImageHandler godoc
//
// @Summary Hide a file inside the supplied image
// @Description This endpoint will hide the supplied file inside the image and return the mutated image as PNG. All errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.HideImageRequest true "Body with the host image and the file to hide inside it"
// @Success 200 {object} api.HideImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /hide/image [post]
func HideImageHandler(ctx *gin.Context) {
	var requestBody api.HideImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image hide request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	hostImage, convertErr := decodeRequestImage(requestBody.ImageToHideIn)
	if convertErr != nil {
		logger.WithError(convertErr).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	encodedImage, stats, err := steganer.HideInImage(hostImage, requestBody.FileToHide.Content, config.ImageSaveConfig{})
	if err != nil {
		logger.WithError(err).Error("Error hiding file in image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errHide)
		return
	}

	logger.With("stats", toHumanizedHideStats(stats, len(requestBody.FileToHide.Content))).Info("Image hide was successful")

	ctx.JSON(http.StatusOK, api.HideImageResponse{EncodedImage: encodedImage})
}

// HideImageFlatbufferHandler is the octet-stream variant of
// HideImageHandler; request and response bodies are flatbuffers.
func HideImageFlatbufferHandler(w http.ResponseWriter, r *http.Request) {
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error reading body", http.StatusInternalServerError)
		return
	}

	hideRequest := HideImage.GetRootAsImageHideRequest(requestBody, 0)
	hostImage, err := decodeRequestImage(hideRequest.ImageToHideInBytes())
	if err != nil {
		http.Error(w, "supplied image is invalid", http.StatusBadRequest)
		return
	}

	var fileToHide HideImage.FileToHide
	if hideRequest.FileToHide(&fileToHide) == nil {
		http.Error(w, "could not read file to hide", http.StatusBadRequest)
		return
	}

	encodedImage, _, err := steganer.HideInImage(hostImage, fileToHide.ContentBytes(), config.ImageSaveConfig{})
	if err != nil {
		http.Error(w, "error hiding file in image", http.StatusBadRequest)
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage))
	imageOffset := fbResponseBuilder.CreateByteVector(encodedImage)
	HideImage.ImageHideResponseStart(fbResponseBuilder)
	HideImage.ImageHideResponseAddEncodedImage(fbResponseBuilder, imageOffset)
	response := HideImage.ImageHideResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = w.Write(fbResponseBuilder.FinishedBytes()); err != nil {
		http.Error(w, "error writing response", http.StatusInternalServerError)
		return
	}
}

func decodeRequestImage(imageBytes []byte) (*image.RGBA, error) {
	rawImage, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, err
	}

	rgbaImg := image.NewRGBA(rawImage.Bounds())
	draw.Draw(rgbaImg, rgbaImg.Bounds(), rawImage, rgbaImg.Bounds().Min, draw.Src)
	return rgbaImg, nil
}
