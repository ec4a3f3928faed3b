package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

type UploadController struct {
	Storage services.Uploader
}

func NewUploadController(storage services.Uploader) *UploadController {
	return &UploadController{Storage: storage}
}

// Upload menerima multipart form dengan field "file" dan mengembalikan URL
// publik dari object storage.
func (uc *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("No se proporcionó ningún archivo."))
		return
	}

	if uc.Storage == nil {
		utils.RespondInternalError(c, errors.New("storage is not configured"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	defer file.Close()

	url, err := uc.Storage.Upload(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("File %s uploaded (%d bytes)", fileHeader.Filename, fileHeader.Size)
	utils.RespondJSON(c, http.StatusOK, gin.H{"url": url})
}
