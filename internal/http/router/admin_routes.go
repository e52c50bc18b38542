package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/admin"
)

func registerAdminRoutes(r chi.Router, c *ctrl.Controllers) {
	r.Route("/user", func(r chi.Router) {
		r.Get("/auth-code/{id}", c.Users.AuthCode)
		r.Post("/list", c.Users.List)
		r.Get("/{id}", c.Users.Get)
		r.Post("/create", c.Users.Create)
		r.Put("/update", c.Users.Update)
		r.Put("/psd", c.Users.ChangePassword)
		r.Post("/del", c.Users.Delete)
	})

	r.Route("/department", func(r chi.Router) {
		r.Post("/list", c.Departments.List)
		r.Post("/create", c.Departments.Create)
		r.Get("/{id}", c.Departments.Get)
		r.Put("/update", c.Departments.Update)
		r.Post("/del", c.Departments.Delete)
	})

	r.Route("/role", func(r chi.Router) {
		r.Post("/list", c.Roles.List)
		r.Post("/create", c.Roles.Create)
		r.Get("/{id}", c.Roles.Get)
		r.Put("/update", c.Roles.Update)
		r.Post("/del", c.Roles.Delete)
	})

	r.Route("/permission", func(r chi.Router) {
		r.Get("/list-role-resources/{role_id}", c.Permissions.ListRoleResources)
		r.Post("/assign-role-menu", c.Permissions.AssignRoleMenu)
	})

	r.Route("/menu", func(r chi.Router) {
		r.Post("/create", c.Menus.Create)
		r.Post("/list", c.Menus.List)
		r.Get("/{id}", c.Menus.Get)
		r.Put("/update", c.Menus.Update)
		r.Post("/del", c.Menus.Delete)
	})
}
