package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"turnos-backend/http-server/auth/login"
	generate_excel "turnos-backend/http-server/generate-report/excel"
	generate_pdfs "turnos-backend/http-server/generate-report/pdfs"
	getinasistencias "turnos-backend/http-server/inasistencias/get"
	getindicadores "turnos-backend/http-server/indicadores/get"
	getplanificacion "turnos-backend/http-server/planificacion/get"
	saveplanificacion "turnos-backend/http-server/planificacion/save"
	statsplanificacion "turnos-backend/http-server/planificacion/stats"
	getproyeccion "turnos-backend/http-server/proyeccion/get"
	getsucursales "turnos-backend/http-server/sucursales/get"
	gettrabajadores "turnos-backend/http-server/trabajadores/get"
	getturnos "turnos-backend/http-server/turnos/get"
	saveturnos "turnos-backend/http-server/turnos/save"
	upturnos "turnos-backend/http-server/turnos/update"
	getventas "turnos-backend/http-server/ventas/get"
	"turnos-backend/internal/config"
	"turnos-backend/internal/middleware/auth"
	"turnos-backend/internal/service/export"
	"turnos-backend/internal/service/planning"
	"turnos-backend/internal/service/projection"
	"turnos-backend/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage,
	planningService *planning.Service, projectionService *projection.Service,
	exportService *export.Service) *chi.Mux {

	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Post("/login", login.Login(log, storage))

	// Catálogo y nómina
	router.Get("/api/turnos", getturnos.GetTurnos(log, storage))
	router.Get("/api/trabajadores", gettrabajadores.GetTrabajadores(log, storage))
	router.Get("/api/sucursales", getsucursales.GetSucursales(log, storage))

	// Planificación mensual
	router.Get("/api/planificacion", getplanificacion.GetPlanificacion(log, storage))
	router.Post("/api/planificacion/guardar", saveplanificacion.SavePlanificacion(log, storage))
	router.Post("/api/planificacion/estadisticas", statsplanificacion.GetEstadisticas(log, planningService))

	// Documentos de la planificación guardada
	router.Get("/api/planificacion/excel", generate_excel.GenerateExcel(log, exportService))
	router.Get("/api/planificacion/pdfs", generate_pdfs.GeneratePDFs(log, exportService))

	// Ventas y proyección
	router.Get("/api/ventas_historicas", getventas.GetVentas(log, storage))
	router.Get("/api/proyeccion", getproyeccion.GetProyeccion(log, projectionService))

	// Indicadores económicos e inasistencias
	router.Get("/api/indicadores/{indicador}", getindicadores.GetIndicador(log, storage))
	router.Get("/api/inasistencias", getinasistencias.GetInasistencias(log, storage))

	// Mantención del catálogo de turnos
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/turnos", saveturnos.SaveTurnoAdmin(log, storage))
	adminRouter.Put("/turnos/{codigo}", upturnos.UpdateTurnoAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
