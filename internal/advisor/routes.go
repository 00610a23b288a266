package advisor

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, svc AdvisorServicePort, maxImageBytes int64) {
	ac := NewAdvisorController(svc, maxImageBytes)

	r.GET("/", ac.Root)
	r.POST("/predict", ac.Predict)
	r.GET("/get-location-name", ac.GetLocationName)
	r.GET("/test-weather", ac.TestWeather)
	r.GET("/languages", ac.Languages)
}
