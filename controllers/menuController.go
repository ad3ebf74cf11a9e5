package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-order/models"
)

func GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		items, err := dataStore.GetMenu(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while listing menu items"})
			return
		}
		if items == nil {
			items = []models.MenuItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := dataStore.AddMenuItem(ctx, item)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "menu item was not created"})
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ID = c.Param("item_id")
		if err := validate.Struct(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := dataStore.UpdateMenuItem(ctx, item); err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "menu item update failed"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		if err := dataStore.DeleteMenuItem(ctx, c.Param("item_id")); err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "menu item delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
	}
}
