package main

import (
	"log"

	"github.com/forumfuncionario/portal-service/config"
	"github.com/forumfuncionario/portal-service/internal/app"

	postgresDriver "github.com/forumfuncionario/portal-service/internal/infrastructure/database/postgres"
)

func main() {
	config := config.CreateNewConfig()

	identityDB, err := postgresDriver.Connect(config.IdentityDB.DBUsername, config.IdentityDB.DBPassword, config.IdentityDB.DBHost, config.IdentityDB.DBPort, config.IdentityDB.DBName, config.Environment)
	if err != nil {
		log.Fatalf("Failed to connect to the identity database: %v", err)
	}

	payrollDB, err := postgresDriver.Connect(config.PayrollDB.DBUsername, config.PayrollDB.DBPassword, config.PayrollDB.DBHost, config.PayrollDB.DBPort, config.PayrollDB.DBName, config.Environment)
	if err != nil {
		log.Fatalf("Failed to connect to the payroll database: %v", err)
	}

	server := app.App{
		IdentityDB: identityDB,
		PayrollDB:  payrollDB,
		Config:     config,
	}

	server.Start()
}
