package router

import (
	"riminspect/internal/handlers/inspection"
	"riminspect/internal/handlers/schedule"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Schedule   schedule.Handler
	Inspection inspection.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Route("/schedules", func(scheduleGroup chi.Router) {
			r.DomainHandlers.Schedule.Router(scheduleGroup)
			r.DomainHandlers.Inspection.Router(scheduleGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
