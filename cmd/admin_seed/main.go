package main

import (
	"context"
	"errors"
	"log"
	"os"

	"chargeflow/internal/config"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"
	"chargeflow/internal/utils/validation"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := validation.NormalizeEmail(os.Getenv("ADMIN_EMAIL"))
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := repositories.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️ Failed to close database connection: %v", err)
		}
	}()

	ctx := context.Background()
	users := repositories.NewUserRepository(db)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	existing, err := users.GetByEmail(ctx, adminEmail)
	switch {
	case err == nil:
		// Promote and reset the password of an existing account.
		existing.IsAdmin = true
		existing.Role = models.RoleAdmin
		existing.Password = string(hashedPassword)
		if err := users.Update(ctx, existing); err != nil {
			log.Fatal("Failed to update admin user:", err)
		}
		if err := users.IncrementTokenVersion(ctx, existing.ID); err != nil {
			log.Fatal("Failed to revoke existing tokens:", err)
		}
		log.Println("✅ Admin account updated")
		return
	case !errors.Is(err, repositories.ErrUserNotFound):
		log.Fatal("Failed to look up admin user:", err)
	}

	adminUser := &models.User{
		Username:      adminEmail,
		Email:         &adminEmail,
		EmailVerified: true,
		Password:      string(hashedPassword),
		IsAdmin:       true,
		Role:          models.RoleAdmin,
		TokenVersion:  1,
	}
	if _, err := users.CreateWithWallet(ctx, adminUser); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("✅ Admin account created successfully!")
}
