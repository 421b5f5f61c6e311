package v1

import (
	"github.com/gin-gonic/gin"
)

// ServerInterface is implemented by the handlers package.
type ServerInterface interface {
	ConnectStore(c *gin.Context)
	GetSchema(c *gin.Context)

	GetExploreOptions(c *gin.Context)
	Explore(c *gin.Context)
	ExportExplore(c *gin.Context)

	GetQueries(c *gin.Context)
	RunSQL(c *gin.Context)
	ExportSQL(c *gin.Context)

	GetReport(c *gin.Context)
	GetReportFile(c *gin.Context)
	GetReportPage(c *gin.Context)
}

// RegisterHandlers binds the API routes onto the /api/v1 group.
func RegisterHandlers(r *gin.RouterGroup, si ServerInterface) {
	r.POST("/store/connect", si.ConnectStore)
	r.GET("/schema", si.GetSchema)

	r.GET("/explore/options", si.GetExploreOptions)
	r.POST("/explore", si.Explore)
	r.POST("/explore/export", si.ExportExplore)

	r.GET("/queries", si.GetQueries)
	r.POST("/sql", si.RunSQL)
	r.POST("/sql/export", si.ExportSQL)

	r.GET("/report", si.GetReport)
	r.GET("/report/file", si.GetReportFile)
	r.GET("/report/pages/:page", si.GetReportPage)
}
