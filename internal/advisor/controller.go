package advisor

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"agro-help-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

// openMultipartFileHook is swapped in tests to simulate unreadable uploads.
var openMultipartFileHook = func(fh *multipart.FileHeader) (multipart.File, error) {
	return fh.Open()
}

type AdvisorController struct {
	Service       AdvisorServicePort
	MaxImageBytes int64
}

func NewAdvisorController(svc AdvisorServicePort, maxImageBytes int64) *AdvisorController {
	return &AdvisorController{Service: svc, MaxImageBytes: maxImageBytes}
}

func (ac *AdvisorController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome!"})
}

// Predict never answers with a 5xx: failures are reported in the body so
// the client can show them next to the question.
func (ac *AdvisorController) Predict(c *gin.Context) {
	requestID := c.GetString(middlewares.RequestIDKey)
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(c.Request.Context(), "predict panicked", "request_id", requestID, "panic", r)
			unexpectedError(c, fmt.Errorf("%v", r))
		}
	}()

	q := Query{
		Text:     c.PostForm("text"),
		Language: c.DefaultPostForm("language", "en"),
	}

	lat, lon := strings.TrimSpace(c.PostForm("lat")), strings.TrimSpace(c.PostForm("lon"))
	if lat != "" && lon != "" {
		q.Coordinates = &Coordinates{Lat: lat, Lon: lon}
	}

	if fh, err := c.FormFile("file"); err == nil && fh.Size > 0 {
		data, err := ac.readUpload(fh)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "upload rejected", "request_id", requestID, "filename", fh.Filename, "err", err)
			unexpectedError(c, err)
			return
		}
		q.Image = data
		q.ImageName = fh.Filename
	}

	res, err := ac.Service.Predict(c.Request.Context(), q)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "predict failed", "request_id", requestID, "err", err)
		unexpectedError(c, err)
		return
	}

	resp := PredictResponse{Analysis: res.Analysis}
	if len(res.Audio) > 0 {
		encoded := base64.StdEncoding.EncodeToString(res.Audio)
		resp.AudioContent = &encoded
	}

	slog.InfoContext(c.Request.Context(), "predict served",
		"request_id", requestID,
		"language", q.Language,
		"has_image", len(q.Image) > 0,
		"audio_bytes", len(res.Audio),
	)
	c.JSON(http.StatusOK, resp)
}

func (ac *AdvisorController) readUpload(fh *multipart.FileHeader) ([]byte, error) {
	if ac.MaxImageBytes > 0 && fh.Size > ac.MaxImageBytes {
		return nil, fmt.Errorf("file %s exceeds %d bytes", fh.Filename, ac.MaxImageBytes)
	}

	f, err := openMultipartFileHook(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (ac *AdvisorController) GetLocationName(c *gin.Context) {
	lat, lon := c.Query("lat"), c.Query("lon")
	c.JSON(http.StatusOK, gin.H{"locationName": ac.Service.LocationName(c.Request.Context(), lat, lon)})
}

func (ac *AdvisorController) TestWeather(c *gin.Context) {
	lat, lon := c.Query("lat"), c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weather_summary": ac.Service.WeatherSummary(c.Request.Context(), lat, lon)})
}

func (ac *AdvisorController) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": ac.Service.SupportedLanguages()})
}

func unexpectedError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{"error": "An unexpected error occurred: " + err.Error()})
}
