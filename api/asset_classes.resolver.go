package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAssetClasses(c *gin.Context) {
	assetClasses, err := m.ReportService.ListDistinctAssetClasses(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if assetClasses == nil {
		assetClasses = []string{}
	}

	c.JSON(200, assetClasses)
}
