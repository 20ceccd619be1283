package web

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler, auth *Auth) {
	router.SetHTMLTemplate(template.Must(template.New("portal").Parse(portalHTML)))

	// Health check
	router.GET("/health", handler.HealthCheck)

	// OAuth login flow
	router.GET("/login", auth.Login)
	router.GET("/callback", auth.Callback)
	router.GET("/logout", auth.Logout)

	router.Use(auth.LoadSession())
	router.GET("/", handler.Index)

	staff := router.Group("/", auth.RequireSession())
	{
		staff.POST("/evaluations", handler.CreateEvaluation)

		senior := staff.Group("/", auth.RequireSenior())
		{
			senior.POST("/templates/:type", handler.SaveTemplate)
			senior.POST("/messages", handler.SendEmbed)
		}
	}
}
