package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetHealth is the aggregate probe: server liveness plus database and cache
// reachability in one response. Any degraded dependency makes the whole
// endpoint report failure.
func (hrm *HealthRoutesManager) GetHealth(w http.ResponseWriter, r *http.Request) {
	serverStatus := hrm.healthService.GetServerHealthStatus()
	dbStatus, dbErr := hrm.healthService.GetDatabaseHealthStatus()
	cacheStatus, cacheErr := hrm.healthService.GetCacheHealthStatus()

	data := map[string]any{
		"server":   serverStatus,
		"database": dbStatus,
		"cache":    cacheStatus,
	}

	if dbErr != nil || cacheErr != nil {
		gecho.InternalServerError(w,
			gecho.WithData(data),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(data),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := hrm.healthService.GetServerHealthStatus()
	gecho.Success(w,
		gecho.WithData(healthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	dbHealthStatus, err := hrm.healthService.GetDatabaseHealthStatus()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithData(dbHealthStatus),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(dbHealthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetCacheHealth(w http.ResponseWriter, r *http.Request) {
	cacheHealthStatus, err := hrm.healthService.GetCacheHealthStatus()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithData(cacheHealthStatus),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(cacheHealthStatus),
		gecho.Send(),
	)
}
