package handlers

import (
	"fmt"
	"net/http"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// serveExport waits for an export started by the handler and streams the
// document back as an attachment.
func serveExport(c *gin.Context, results <-chan usecase.ExportResult) {
	select {
	case res, ok := <-results:
		if !ok {
			writeError(c, usecase.ErrExportFailed)
			return
		}
		if res.Err != nil {
			writeError(c, res.Err)
			return
		}
		writeDocument(c, res.Document)
	case <-c.Request.Context().Done():
		writeError(c, c.Request.Context().Err())
	}
}

func writeDocument(c *gin.Context, doc entities.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	if doc.Location != "" {
		c.Header("X-Document-Location", doc.Location)
	}
	c.Data(http.StatusOK, doc.ContentType(), doc.Data)
}

func parseFormat(c *gin.Context) (entities.DocumentFormat, bool) {
	format, err := entities.ParseDocumentFormat(c.Query("format"))
	if err != nil {
		writeError(c, err)
		return "", false
	}
	return format, true
}
