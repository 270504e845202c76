package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mailcanvas/mailcanvas/config"
	"github.com/mailcanvas/mailcanvas/internal/database"
	"github.com/mailcanvas/mailcanvas/internal/repository"
	"github.com/mailcanvas/mailcanvas/server"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: mailcanvas <command>")
		fmt.Println("Commands:")
		fmt.Println("  migrate   Run database migrations")
		fmt.Println("  server    Start the application server")
		os.Exit(1)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Config initialization failed: %v", err)
	}
	if cfg == nil {
		log.Fatalf("config is empty")
	}

	// Setup the database
	canvasDB, err := database.InitCanvasDatabase(&database.DatabaseConfig{
		DBName:          cfg.CanvasDatabaseConfig.DBName,
		Host:            cfg.CanvasDatabaseConfig.Host,
		Port:            cfg.CanvasDatabaseConfig.Port,
		User:            cfg.CanvasDatabaseConfig.User,
		Password:        cfg.CanvasDatabaseConfig.Password,
		MaxConn:         cfg.CanvasDatabaseConfig.MaxConn,
		MaxIdleConn:     cfg.CanvasDatabaseConfig.MaxIdleConn,
		ConnMaxLifetime: cfg.CanvasDatabaseConfig.ConnMaxLifetime,
		LogLevel:        cfg.CanvasDatabaseConfig.LogLevel,
		SSLMode:         cfg.CanvasDatabaseConfig.SSLMode,
	})
	if err != nil {
		log.Fatalf("Canvas database initialization failed: %v", err)
	}

	switch os.Args[1] {
	case "migrate":

		err := repository.MigrateDB(cfg.CanvasDatabaseConfig, canvasDB)
		if err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

	case "server":

		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Println("MailCanvas starting up...")

		server, err := server.NewServer(cfg, canvasDB)
		if err != nil {
			log.Fatalf("Server setup failed: %v", err)
		}

		err = server.Run()
		if err != nil {
			log.Fatalf("Server startup failed: %v", err)
		}

		log.Println("Shutdown complete")

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		fmt.Println("Usage: mailcanvas <command>")
		fmt.Println("Commands:")
		fmt.Println("  migrate   Run database migrations")
		fmt.Println("  server    Start the application server")
		os.Exit(1)
	}
}
