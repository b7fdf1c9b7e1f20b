package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sendWorkbook buffers the export so a validation failure can still be answered as JSON.
func sendWorkbook(c *gin.Context, logger *slog.Logger, name string, export func(ctx context.Context, w io.Writer) error) {
	var buf bytes.Buffer
	if err := export(c.Request.Context(), &buf); err != nil {
		respondError(c, logger, err, "Failed to export "+name)
		return
	}
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
