// Package router assembles the HTTP route tree.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "registry_backend/internal/feature/auth/transport/handler"
	registryhandler "registry_backend/internal/feature/registry/transport/handler"
	"registry_backend/internal/platform/authmw"
	platformhandler "registry_backend/internal/platform/http/handler"
)

// NewRouter wires handlers onto the gin engine. Mutating registry routes
// sit behind the staff gate; everything under /api except register, login
// and logout requires a valid session.
func NewRouter(auth *authhandler.AuthHandler, professionals *registryhandler.ProfessionalHandler,
	resolver authmw.SessionResolver) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	api := r.Group("/api")
	{
		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)
		api.POST("/logout", auth.Logout)

		authed := api.Group("/")
		authed.Use(authmw.AuthRequired(resolver))
		{
			authed.GET("/user", auth.CurrentUser)
			authed.GET("/professionals", professionals.List)
			authed.GET("/professionals/export", professionals.ExportCSV)

			staff := authed.Group("/")
			staff.Use(authmw.StaffOnly())
			{
				staff.POST("/professionals", professionals.Create)
				staff.PATCH("/professionals/:id", professionals.Update)
				staff.DELETE("/professionals/:id", professionals.Delete)
			}
		}
	}

	return r
}
