package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/hrconsole/attendance-backend-go/internal/config"
	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
	"github.com/hrconsole/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/hrconsole/attendance-backend-go/internal/handler/http"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/database"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/jwt"
	"github.com/hrconsole/attendance-backend-go/internal/repository/memory"
	"github.com/hrconsole/attendance-backend-go/internal/repository/postgresql"
	ledgerService "github.com/hrconsole/attendance-backend-go/internal/service/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var directory employee.DirectoryRepository
	switch cfg.Directory.Source {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		directory = postgresql.NewEmployeeDirectory(db)
	case "seed":
		directory = fixtures.NewDirectory(cfg.Directory.Seed, cfg.Directory.Count)
	default:
		log.Fatal("Unsupported directory source: ", cfg.Directory.Source)
	}

	seed := cfg.Ledger.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := ledger.NewWeightedSource(rand.New(rand.NewSource(seed)), ledger.DefaultWeights())

	sessionStore := memory.NewSessionStore()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	ledgerSvc := ledgerService.NewLedgerService(sessionStore, directory, source, cfg.Ledger.PageSize)

	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(directory)

	router := appHTTP.NewRouter(
		JWTService,
		ledgerHandler,
		employeeHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
