package handler

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rcouto/produtividade-rateio/dto"
	"github.com/rcouto/produtividade-rateio/report"
	"github.com/rcouto/produtividade-rateio/service"
	"github.com/rcouto/produtividade-rateio/utils"
)

type RateioHandler struct {
	rateioService *service.RateioService
}

func NewRateioHandler(rateioService *service.RateioService) *RateioHandler {
	return &RateioHandler{
		rateioService: rateioService,
	}
}

// Convert handles the POST /rateio/convert endpoint. It accepts a
// multipart PDF under "file", an optional "amount" in Brazilian format,
// "no_clean" to bypass the boilerplate cleaner, and "format" selecting
// json (default), csv or xlsx output.
func (h *RateioHandler) Convert(c *gin.Context) {
	log.Println("Received rateio conversion request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A PDF file is required", err)
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		h.sendError(c, http.StatusBadRequest, "Only PDF files are supported", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer f.Close()

	pdfData, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	amount := utils.ParseAmount(c.PostForm("amount"))
	clean := c.PostForm("no_clean") != "true"
	format := c.DefaultPostForm("format", "json")

	records, err := h.rateioService.ConvertPDFBytes(pdfData, clean, amount)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Failed to convert PDF", err)
		return
	}

	log.Printf("Converted %s: %d record(s)", fileHeader.Filename, len(records))

	if format == "json" {
		c.JSON(http.StatusOK, dto.ConvertResponse{
			Records:     records,
			RecordCount: len(records),
			TotalValue:  utils.TotalValue(records),
			ProcessedAt: time.Now().Format(time.RFC3339),
		})
		return
	}

	exporter, err := report.NewExporter(format)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Unsupported output format", err)
		return
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, records, amount != nil); err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to export records", err)
		return
	}

	outName := strings.TrimSuffix(fileHeader.Filename, ".pdf") + exporter.Extension()
	c.Header("Content-Disposition", `attachment; filename="`+outName+`"`)
	c.Data(http.StatusOK, exporter.ContentType(), buf.Bytes())
}

// sendError sends a structured error response
func (h *RateioHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "CONVERSION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
