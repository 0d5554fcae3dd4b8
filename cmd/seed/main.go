// Command seed wipes and repopulates the menu catalog with the demo
// dishes.
package main

import (
	"context"

	"go.uber.org/zap"

	"zestyflow/config"
	"zestyflow/models"
	"zestyflow/repositories"
	"zestyflow/utils"
)

var data = []models.MenuItem{
	{Name: "Cheese Burst Pizza", Price: 299, ImageURL: "images/cheeseBurst.jpeg", Category: "Pizza", Description: "Loaded cheese.", Available: true},
	{Name: "Loaded Burger", Price: 199, ImageURL: "images/loadedBurger.jfif", Category: "Burger", Description: "Juicy burger.", Available: true},
	{Name: "Italian Pasta", Price: 249, ImageURL: "images/italianPasta.webp", Category: "Pasta", Description: "Creamy pasta.", Available: true},
	{Name: "Chocolate Lava Cake", Price: 149, ImageURL: "images/chocoLava.jpg", Category: "Dessert", Description: "Warm chocolate cake.", Available: true},
}

func main() {
	cfg := config.LoadConfig()

	logger := utils.NewLogger(cfg.AppEnv)
	defer logger.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Exec(ctx, "TRUNCATE menu_items RESTART IDENTITY"); err != nil {
		logger.Fatal("failed to clear menu", zap.Error(err))
	}

	menuRepo := repositories.NewMenuRepository(db)
	for i := range data {
		if err := menuRepo.Create(ctx, &data[i]); err != nil {
			logger.Fatal("failed to seed menu item", zap.String("name", data[i].Name), zap.Error(err))
		}
	}

	logger.Info("menu seeded", zap.Int("items", len(data)))
}
