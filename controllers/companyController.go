package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-order/models"
)

func GetCompanySettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		settings, err := dataStore.GetCompanySettings(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while fetching company settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// SaveCompanySettings replaces the settings document wholesale. Fields left
// out of the request body come back empty on the next read.
func SaveCompanySettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var settings models.CompanySettings
		if err := c.BindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := dataStore.SaveCompanySettings(ctx, settings); err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "company settings were not saved"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
