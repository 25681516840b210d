package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-object-recognizer/internal/config"
	apperrors "go-object-recognizer/internal/errors"
	"go-object-recognizer/internal/logger"
	"go-object-recognizer/internal/service"
	"go-object-recognizer/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewHandler builds the HTTP surface: upload, pending status, raw
// image retrieval and the enriched entry listing.
func NewHandler(recognition service.RecognitionService, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(requestSizeLimiter(cfg.Server.MaxRequestBodySize))

	r.GET("/health", healthCheck)
	r.GET("/", listEntries(recognition, cfg))
	r.POST("/upload", uploadImage(recognition, cfg))
	r.GET("/status", checkStatus(recognition, cfg))
	r.GET("/image/:id", serveImage(recognition, cfg))

	return r
}

// listEntries renders all processed captures, enriched with their
// classification word, confidence and definition. Each listing
// re-resolves definitions synchronously, so a slow dictionary API
// slows this endpoint.
func listEntries(recognition service.RecognitionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Server.RequestTimeout)
		defer cancel()

		entries, err := recognition.ListProcessedEntries(ctx)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "failed to list entries", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"entries":            len(entries),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Entry listing completed")

		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}

// uploadImage stores a base64 data-URI capture as a pending record.
func uploadImage(recognition service.RecognitionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Server.RequestTimeout)
		defer cancel()

		var req models.UploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).WithField("ip", c.ClientIP()).Warn("Upload attempt with no image data")
			c.JSON(http.StatusBadRequest, models.UploadResponse{
				Success: false,
				Message: "No image data provided",
			})
			return
		}

		id, err := recognition.UploadImage(ctx, req.Image)
		if err != nil {
			logger.WithError(err).WithField("ip", c.ClientIP()).Error("Upload failed")
			c.JSON(apperrors.GetStatusCode(err), models.UploadResponse{
				Success: false,
				Message: uploadFailureMessage(err),
			})
			return
		}

		c.JSON(http.StatusOK, models.UploadResponse{
			Success: true,
			Message: "Image uploaded successfully and is being processed.",
			ImageID: id,
		})
	}
}

// checkStatus reports whether pending captures exist.
func checkStatus(recognition service.RecognitionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Server.RequestTimeout)
		defer cancel()

		pending, err := recognition.HasPending(ctx)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "failed to check status", err)
			return
		}

		c.JSON(http.StatusOK, models.StatusResponse{Pending: pending})
	}
}

// serveImage streams the raw stored image bytes.
func serveImage(recognition service.RecognitionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Server.RequestTimeout)
		defer cancel()

		data, err := recognition.ImageData(ctx, c.Param("id"))
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "failed to serve image", err)
			return
		}

		c.Data(http.StatusOK, "image/jpeg", data)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// uploadFailureMessage keeps upload responses in the request/response
// vocabulary of the capture client rather than leaking error chains.
func uploadFailureMessage(err error) string {
	switch {
	case apperrors.IsType(err, apperrors.ErrorTypeValidation):
		return "Invalid image data"
	case apperrors.IsType(err, apperrors.ErrorTypeStorage):
		return "Database error"
	default:
		return "Upload failed"
	}
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
