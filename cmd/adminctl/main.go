// Command adminctl creates an administrator account directly in the
// database. It is meant for bootstrapping: the HTTP API only registers
// regular users.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/auth"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/config"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/repomanager"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/users"
)

func main() {

	cfg := config.LoadConfig()

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Enter admin username")

	username, err := reader.ReadString('\n')
	if err != nil {
		log.Printf("%v", err)
		return
	}
	username = strings.TrimSpace(username)

	fmt.Println("Enter password")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if username == "" || len(password) == 0 {
		log.Println("username and password are required")
		return
	}

	if err := createAdmin(cfg, username, string(password)); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			log.Printf("user %q already exists", username)
			return
		}
		log.Printf("%v", err)
		return
	}

	fmt.Println("Success!")
}

func createAdmin(cfg *config.Config, username, password string) error {

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	// New rows default to the regular role, so create first and
	// promote in a second step.
	repo := rm.Users(db)
	created, err := repo.Create(ctx, &models.User{
		Username: username,
		Password: hash,
	})
	if err != nil {
		return err
	}

	role := "admin"
	_, err = repo.Update(ctx, created.ID, users.UpdateParams{Role: &role})
	return err
}
