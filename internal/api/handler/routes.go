package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-extractor/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-extractor/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Extraction(scheduler ExtractionScheduler, jwtSecret string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/extraction/status",
			Method:  http.MethodGet,
			Handler: GetExtractionStatus(scheduler),
		},
		{
			Path:        "/v1/extraction/run",
			Method:      http.MethodPost,
			Handler:     RunExtraction(scheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(jwtSecret)},
		},
	}
}
