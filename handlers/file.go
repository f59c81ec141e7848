package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"linkup/config"
	"linkup/utils"
)

// ServeFile returns a stored upload by name. Names are validated so a
// request can never escape the upload directory.
func (h *Handler) ServeFile(c *gin.Context) {
	filename := c.Param("filename")

	cleanFilename := filepath.Clean(filename)
	if cleanFilename != filepath.Base(cleanFilename) || cleanFilename == "." || cleanFilename == ".." {
		utils.BadRequest(c, "invalid filename")
		return
	}

	filePath := filepath.Join(config.Cfg.UploadDir, cleanFilename)

	absUploadDir, err := filepath.Abs(config.Cfg.UploadDir)
	if err != nil {
		utils.InternalError(c, "server configuration error")
		return
	}
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		utils.BadRequest(c, "invalid file path")
		return
	}
	if !strings.HasPrefix(absFilePath, absUploadDir+string(filepath.Separator)) {
		utils.BadRequest(c, "invalid file path")
		return
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		utils.NotFound(c, "file not found")
		return
	}

	c.File(filePath)
}
