package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"tienda_server/config"
	"tienda_server/database"
	"tienda_server/lib"
	"tienda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// adminctl seeds and removes admin accounts out of band; there is no
// self-service signup path in the server itself.
//
//	adminctl create -username <name> -password <secret>
//	adminctl delete -username <name>
func main() {
	_ = godotenv.Load()
	logger := config.InitializeLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd := os.Args[1]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	username := fs.String("username", "", "admin username")
	password := fs.String("password", "", "admin password (create only)")
	fs.Parse(os.Args[2:])

	if *username == "" {
		logger.Fatal("username is required")
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}
	defer database.CloseInstance()

	db := database.GetInstance()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cmd {
	case "create":
		if *password == "" {
			logger.Fatal("password is required")
		}
		createAdmin(ctx, db, logger, *username, *password)
	case "delete":
		deleteAdmin(ctx, db, logger, *username)
	default:
		usage()
		os.Exit(2)
	}
}

func createAdmin(ctx context.Context, db *database.DB, logger *gecho.Logger, username, password string) {
	hash, err := lib.HashPassword(password)
	if err != nil {
		logger.Fatal("Failed to hash password", gecho.Field("error", err))
	}

	admin := &tables.Admin{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if _, err := database.Create(db, ctx, admin); err != nil {
		if lib.IsUniqueViolation(lib.MapPgError(err)) {
			logger.Fatal("Admin username already exists", gecho.Field("username", username))
		}
		logger.Fatal("Failed to create admin", gecho.Field("error", err))
	}

	logger.Info("Admin created", gecho.Field("username", username), gecho.Field("id", admin.Id))
}

func deleteAdmin(ctx context.Context, db *database.DB, logger *gecho.Logger, username string) {
	res, err := db.NewDelete().
		Model((*tables.Admin)(nil)).
		Where("username = ?", username).
		Exec(ctx)
	if err != nil {
		logger.Fatal("Failed to delete admin", gecho.Field("error", err))
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		logger.Warn("No admin with that username", gecho.Field("username", username))
		return
	}

	logger.Info("Admin deleted", gecho.Field("username", username))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: adminctl <create|delete> -username <name> [-password <secret>]")
}
