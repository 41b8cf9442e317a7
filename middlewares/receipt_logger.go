package middlewares

import (
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
)

func ReceiptLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.InfoLogger.Printf("Generating receipt for order ID: %s", c.Param("order_id"))

		c.Next()

		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Receipt generated successfully for order ID: %s", c.Param("order_id"))
		} else {
			utils.ErrorLogger.Errorf("Failed to generate receipt for order ID: %s", c.Param("order_id"))
		}
	}
}
