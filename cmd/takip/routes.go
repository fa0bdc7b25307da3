package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	getadmin "damper-takip/http-server/admin/get"
	removeadmin "damper-takip/http-server/admin/remove"
	saveadmin "damper-takip/http-server/admin/save"
	upadmin "damper-takip/http-server/admin/update"
	getanalytics "damper-takip/http-server/analytics/get"
	"damper-takip/http-server/auth/login"
	getdampers "damper-takip/http-server/dampers/get"
	removedampers "damper-takip/http-server/dampers/remove"
	savedampers "damper-takip/http-server/dampers/save"
	updampers "damper-takip/http-server/dampers/update"
	getdorses "damper-takip/http-server/dorses/get"
	"damper-takip/http-server/dorses/link"
	removedorses "damper-takip/http-server/dorses/remove"
	savedorses "damper-takip/http-server/dorses/save"
	updorses "damper-takip/http-server/dorses/update"
	getdropdowns "damper-takip/http-server/dropdowns/get"
	generate_excel "damper-takip/http-server/generate-report/generate-excel"
	getsasis "damper-takip/http-server/sasis/get"
	removesasis "damper-takip/http-server/sasis/remove"
	savesasis "damper-takip/http-server/sasis/save"
	upsasis "damper-takip/http-server/sasis/update"
	getstats "damper-takip/http-server/stats/get"
	getsummary "damper-takip/http-server/summary/get"
	removesummary "damper-takip/http-server/summary/remove"
	"damper-takip/internal/config"
	"damper-takip/internal/middleware/auth"
	"damper-takip/internal/service/dashboard"
	generate_excel2 "damper-takip/internal/service/generate-excel"
	"damper-takip/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, dashboardService *dashboard.Service, reportService *generate_excel2.ReportService) *chi.Mux {
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

	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	// damper siparişleri
	router.Get("/api/dampers", getdampers.GetDampers(log, storage))
	router.Post("/api/dampers", savedampers.SaveDamper(log, storage))
	router.Get("/api/dampers/{id}", getdampers.GetDamper(log, storage))
	router.Put("/api/dampers/{id}", updampers.UpdateDamper(log, storage))
	router.Delete("/api/dampers/{id}", removedampers.DeleteDamper(log, storage))

	// dorse siparişleri
	router.Get("/api/dorses", getdorses.GetDorses(log, storage))
	router.Post("/api/dorses", savedorses.SaveDorse(log, storage))
	router.Get("/api/dorses/{id}", getdorses.GetDorse(log, storage))
	router.Put("/api/dorses/{id}", updorses.UpdateDorse(log, storage))
	router.Delete("/api/dorses/{id}", removedorses.DeleteDorse(log, storage))
	router.Put("/api/dorses/{id}/sasi", link.LinkSasi(log, storage))

	// şasi siparişleri ve stok
	router.Get("/api/sasis", getsasis.GetSasis(log, storage))
	router.Post("/api/sasis", savesasis.SaveSasi(log, storage))
	router.Get("/api/sasis/{id}", getsasis.GetSasi(log, storage))
	router.Put("/api/sasis/{id}", upsasis.UpdateSasi(log, storage))
	router.Delete("/api/sasis/{id}", removesasis.DeleteSasi(log, storage))

	// istatistik ve analizler
	router.Get("/api/stats", getstats.GetStats(log, storage, dashboardService))
	router.Get("/api/analytics/step-stats", getanalytics.GetStepStats(log, storage))
	router.Get("/api/analytics/company-distribution", getanalytics.GetCompanyDistribution(log, storage))
	router.Get("/api/analytics/recent-activity", getanalytics.GetRecentActivity(log, storage))

	// özet tabloları
	router.Get("/api/dampers-summary", getsummary.GetDampersSummary(log, storage))
	router.Get("/api/dorses-summary", getsummary.GetDorsesSummary(log, storage))
	router.Get("/api/company-summary", getsummary.GetCompanySummary(log, storage))
	router.Delete("/api/company-m3", removesummary.DeleteCompanyM3(log, storage))

	router.Get("/api/dropdowns", getdropdowns.GetDropdowns())

	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, reportService))

	router.Post("/api/auth/login", login.Login(log, storage))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/users", getadmin.GetUsers(log, storage))
	adminRouter.Post("/users", saveadmin.SaveUser(log, storage))
	adminRouter.Put("/users/{id}", upadmin.UpdateUser(log, storage))
	adminRouter.Delete("/users/{id}", removeadmin.DeleteUser(log, storage))
	adminRouter.Get("/login-logs", getadmin.GetLoginLogs(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
