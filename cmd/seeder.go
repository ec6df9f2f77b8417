package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/travel-budget/internal/budget"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"expenses", "budgets", "travel_plans", "users"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		email := "traveler@example.com"
		var userID string
		err = db.QueryRow("SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		if err != nil {
			userID = uuid.NewString()
			hash, _ := bcrypt.GenerateFromPassword([]byte("travelbudget"), bcrypt.DefaultCost)
			_, err = db.Exec(`
INSERT INTO users (id, email, name, password_hash, home_currency, locale, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'USD', 'en-US', now(), now())`,
				userID, email, "Demo Traveler", string(hash))
			if err != nil {
				log.Fatalf("failed to insert demo user: %v", err)
			}
			fmt.Println("Seeded demo user:", email)
		} else {
			fmt.Println("Demo user already exists:", email)
		}

		var planID string
		err = db.QueryRow("SELECT id FROM travel_plans WHERE user_id = $1 AND destination = $2", userID, "Istanbul").Scan(&planID)
		if err != nil {
			planID = uuid.NewString()
			start := time.Now().AddDate(0, 1, 0)
			end := start.AddDate(0, 0, 7)
			_, err = db.Exec(`
INSERT INTO travel_plans (id, user_id, destination, start_date, end_date, travelers, created_at, updated_at)
VALUES ($1, $2, 'Istanbul', $3, $4, '2 adults', now(), now())`,
				planID, userID, start, end)
			if err != nil {
				log.Fatalf("failed to insert travel plan: %v", err)
			}
			fmt.Println("Seeded travel plan: Istanbul")
		}

		var budgetID string
		err = db.QueryRow("SELECT id FROM budgets WHERE travel_plan_id = $1", planID).Scan(&budgetID)
		if err != nil {
			budgetID = uuid.NewString()
			categories := budget.CategoryList{
				{ID: uuid.NewString(), Name: "Food", Icon: "utensils", Color: "#e76f51", AllocatedAmount: 3000},
				{ID: uuid.NewString(), Name: "Transport", Icon: "bus", Color: "#2a9d8f", AllocatedAmount: 2000},
				{ID: uuid.NewString(), Name: "Sightseeing", Icon: "camera", Color: "#e9c46a", AllocatedAmount: 2500},
			}
			categoriesJSON, _ := json.Marshal(categories)
			_, err = db.Exec(`
INSERT INTO budgets (id, user_id, travel_plan_id, total_budget, currency, categories, created_at, updated_at)
VALUES ($1, $2, $3, 10000, 'TRY', $4, now(), now())`,
				budgetID, userID, planID, categoriesJSON)
			if err != nil {
				log.Fatalf("failed to insert budget: %v", err)
			}
			fmt.Println("Seeded budget: 10000 TRY")

			foodCategory := categories[0].ID
			_, err = db.Exec(`
INSERT INTO expenses (id, user_id, budget_id, category_id, amount, description, expense_date, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, 450, 'Dinner at Karakoy', now(), '[]', now(), now())`,
				uuid.NewString(), userID, budgetID, foodCategory)
			if err != nil {
				log.Fatalf("failed to insert expense: %v", err)
			}
			fmt.Println("Seeded sample expense")
		}

		fmt.Println("Seeding complete")
	},
}
