package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/bivekigroup/staff-backend-go/internal/config"
	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
	"github.com/bivekigroup/staff-backend-go/internal/domain/stats"
	appGraphQL "github.com/bivekigroup/staff-backend-go/internal/handler/graphql"
	appHTTP "github.com/bivekigroup/staff-backend-go/internal/handler/http"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/database"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/storage"
	"github.com/bivekigroup/staff-backend-go/internal/repository/memory"
	"github.com/bivekigroup/staff-backend-go/internal/repository/postgresql"
	employeeService "github.com/bivekigroup/staff-backend-go/internal/service/employee"
	"github.com/bivekigroup/staff-backend-go/internal/service/file"
	scheduleService "github.com/bivekigroup/staff-backend-go/internal/service/schedule"
	statsService "github.com/bivekigroup/staff-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var (
		employeeRepo employee.EmployeeRepository
		scheduleRepo schedule.ScheduleRepository
		orgRepo      organization.OrganizationRepository
		statsRepo    stats.StatsRepository
	)

	switch cfg.Database.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		scheduleRepo = postgresql.NewScheduleRepository(db)
		orgRepo = postgresql.NewOrganizationRepository(db)
		statsRepo = postgresql.NewStatsRepository(db)
	case "memory":
		store := memory.NewStore()
		employeeRepo = memory.NewEmployeeRepository(store)
		scheduleRepo = memory.NewScheduleRepository(store)
		orgRepo = memory.NewOrganizationRepository(store)
		statsRepo = memory.NewStatsRepository(store)
	default:
		log.Fatal("Unsupported DB_DRIVER: ", cfg.Database.Driver)
	}

	if err := orgRepo.Ensure(context.Background(), organization.Organization{
		ID:   cfg.App.DefaultOrganizationID,
		Name: cfg.App.DefaultOrganizationName,
	}); err != nil {
		log.Fatal("Error seeding default organization: ", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	fileService := file.NewFileService(fileStorage)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, orgRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo)
	statsSvc := statsService.NewStatsService(statsRepo)

	resolver := appGraphQL.NewResolver(employeeSvc, scheduleSvc, statsSvc, employeeRepo, scheduleRepo, orgRepo)
	schema := appGraphQL.NewSchema(resolver)

	uploadHandler := appHTTP.NewUploadHandler(fileService)
	router := appHTTP.NewRouter(schema, uploadHandler, cfg.App.AllowedOrigins, cfg.App.Env, cfg.Storage.BasePath)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error: ", err)
	}
}
