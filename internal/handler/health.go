package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports connectivity of the database and Redis.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		report := gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)}

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			report["database"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			report["database"] = "up"
		}

		if rdb != nil && rdb.Ping(c.Request.Context()).Err() == nil {
			report["redis"] = "up"
		} else {
			report["redis"] = "down"
			status = http.StatusServiceUnavailable
		}

		if status != http.StatusOK {
			report["status"] = "degraded"
		}
		c.JSON(status, report)
	}
}
