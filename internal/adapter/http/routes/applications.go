package routes

import "github.com/gin-gonic/gin"

const (
	PathApplications = "/applications"
	PathReceipts     = "/receipts"
)

func addApplicationRoutes(rg *gin.RouterGroup, h Handlers) {
	applications := rg.Group(PathApplications)
	{
		applications.POST("", h.Applications.CreateApplication)
		applications.GET("", h.Applications.ListApplications)
		applications.GET("/:number", h.Applications.GetApplication)
		applications.PATCH("/:number", h.Applications.UpdateApplication)
		applications.DELETE("/:number", h.Applications.DeleteApplication)
		applications.POST("/:number/status", h.Applications.TransitionStatus)
		applications.GET("/:number/history", h.Applications.GetStatusHistory)

		applications.POST("/:number/documents", h.Documents.AttachDocument)
		applications.GET("/:number/documents", h.Documents.ListDocuments)
		applications.GET("/:number/documents/:id", h.Documents.GetDocument)
		applications.PUT("/:number/documents/:id", h.Documents.ReplaceDocument)
		applications.DELETE("/:number/documents/:id", h.Documents.DeleteDocument)
		applications.GET("/:number/documents/:id/url", h.Documents.GetDownloadURL)

		applications.POST("/:number/reviews", h.Reviews.AssignReview)
		applications.GET("/:number/reviews", h.Reviews.ListReviews)
		applications.POST("/:number/reviews/:review_type/start", h.Reviews.StartReview)
		applications.POST("/:number/reviews/:review_type/complete", h.Reviews.CompleteReview)

		applications.POST("/:number/applicants", h.Applicants.AddApplicant)
		applications.GET("/:number/applicants", h.Applicants.ListApplicants)

		applications.GET("/:number/fee-quote", h.FeeSchedules.GetFeeQuote)
	}
}
