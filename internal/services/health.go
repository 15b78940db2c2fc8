package services

import (
	"fmt"

	"gorm.io/gorm"
)

// AdapterStatus describes whether each external adapter is configured.
type AdapterStatus struct {
	Extraction bool `json:"extraction"`
	Analysis   bool `json:"analysis"`
	Speech     bool `json:"speech"`
}

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string        `json:"status"`
	Database     string        `json:"database"`
	Adapters     AdapterStatus `json:"adapters"`
	ErrorMessage string        `json:"error,omitempty"`
}

// HealthCheck reports database reachability and adapter configuration.
// Unconfigured adapters degrade the feature set but do not make the
// service unhealthy.
func HealthCheck(db *gorm.DB, adapters AdapterStatus) HealthCheckResult {
	result := HealthCheckResult{
		Status:   "healthy",
		Database: "ok",
		Adapters: adapters,
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.ErrorMessage = fmt.Sprintf("database connection error: %v", err)
		return result
	}
	if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.ErrorMessage = fmt.Sprintf("database ping failed: %v", err)
	}

	return result
}
