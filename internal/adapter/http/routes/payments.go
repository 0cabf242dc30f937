package routes

import (
	"permit_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFeeSchedules = "/fee-schedules"
	PathPayment      = "/applications/:number/payment"
)

func addPaymentRoutes(rg *gin.RouterGroup, feeHandler *handlers.FeeScheduleHandler, paymentHandler *handlers.PaymentHandler) {
	fees := rg.Group(PathFeeSchedules)
	{
		fees.POST("", feeHandler.CreateFeeSchedule)
		fees.GET("", feeHandler.ListFeeSchedules)
		fees.GET("/:id", feeHandler.GetFeeSchedule)
		fees.GET("/:id/calculate", feeHandler.CalculateFee)
	}

	payment := rg.Group(PathPayment)
	{
		payment.POST("", paymentHandler.CreatePayment)
		payment.GET("", paymentHandler.GetPayment)
		payment.POST("/process", paymentHandler.ProcessPayment)
		payment.POST("/refund", paymentHandler.RefundPayment)
		payment.GET("/transactions", paymentHandler.ListTransactions)
	}

	rg.GET(PathReceipts+"/:receipt_number", paymentHandler.GetPaymentByReceipt)
}
