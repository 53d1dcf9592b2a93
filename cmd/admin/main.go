// Command admin creates an administrator account. Signup over the API never
// grants the admin flag, so the first admin is bootstrapped here, with the
// password read without echo.
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

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/avolkovs/clippings/internal/server/auth"
	"github.com/avolkovs/clippings/internal/server/config"
	"github.com/avolkovs/clippings/internal/server/models"
	"github.com/avolkovs/clippings/internal/server/repositories/repomanager"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	user, password, err := promptAdmin(os.Stdin)
	if err != nil {
		log.Fatalf("%v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("error hashing password: %v", err)
	}
	user.PasswordHash = hash
	user.Admin = true

	created, err := m.Users(db).Create(ctx, user)
	if err != nil {
		log.Fatalf("error creating admin: %v", err)
	}

	fmt.Printf("admin user created, id=%d email=%s\n", created.ID, created.Email)
}

func promptAdmin(in *os.File) (*models.User, string, error) {
	reader := bufio.NewReader(in)

	email, err := promptLine(reader, "Email: ")
	if err != nil {
		return nil, "", err
	}
	firstName, err := promptLine(reader, "First name: ")
	if err != nil {
		return nil, "", err
	}
	lastName, err := promptLine(reader, "Last name: ")
	if err != nil {
		return nil, "", err
	}

	password, err := promptPassword(in, "Password: ")
	if err != nil {
		return nil, "", err
	}
	confirm, err := promptPassword(in, "Confirm password: ")
	if err != nil {
		return nil, "", err
	}
	if password != confirm {
		return nil, "", errors.New("passwords do not match")
	}
	if password == "" {
		return nil, "", errors.New("password must not be empty")
	}

	return &models.User{FirstName: firstName, LastName: lastName, Email: email}, password, nil
}

func promptLine(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(in *os.File, label string) (string, error) {
	fmt.Print(label)
	password, err := term.ReadPassword(int(in.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return string(password), nil
}
