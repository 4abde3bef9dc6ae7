package main

import (
	"context"
	"fmt"

	"footwear-store/internal/assets"
	"footwear-store/internal/auth"
	"footwear-store/internal/catalog"
	"footwear-store/internal/config"
	"footwear-store/internal/database"
	"footwear-store/internal/logger"
	"footwear-store/internal/repository"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func sortMode(name string) catalog.SortMode {
	switch name {
	case "asc":
		return catalog.SortQuantityAsc
	case "desc":
		return catalog.SortQuantityDesc
	default:
		return catalog.SortNone
	}
}

func main() {
	var (
		search   = pflag.String("search", "", "substring to match across product fields")
		vendor   = pflag.String("vendor", "", "exact vendor name constraint (empty for all vendors)")
		sortBy   = pflag.String("sort", "none", "quantity sort: none, asc or desc")
		login    = pflag.String("login", "", "account login (omit for guest access)")
		password = pflag.String("password", "", "account password")
	)
	pflag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.App.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to store", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, "migrations", log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()

	role := auth.RoleGuest
	displayName := "Guest"
	if *login != "" {
		user, err := auth.NewService(repository.NewUserRepository(db)).Authenticate(ctx, *login, *password)
		if err != nil {
			log.Fatal("Login failed", zap.Error(err))
		}
		role = user.Role
		displayName = user.DisplayName()
	}

	caps := auth.CapabilitiesFor(role)
	log.Info("Session started",
		zap.String("user", displayName),
		zap.String("role", role),
		zap.Bool("can_create", caps.CanCreate),
		zap.Bool("can_edit", caps.CanEdit),
		zap.Bool("can_delete", caps.CanDelete),
	)

	assetManager, err := assets.NewManager(cfg.Assets.Dir, cfg.Assets.Placeholder, log)
	if err != nil {
		log.Fatal("Failed to prepare asset directory", zap.Error(err))
	}

	refs, err := repository.NewReferenceRepository(db).LoadReferences(ctx)
	if err != nil {
		log.Fatal("Failed to load references", zap.Error(err))
	}
	log.Info("References loaded",
		zap.Int("categories", len(refs.Categories)),
		zap.Int("manufacturers", len(refs.Manufacturers)),
		zap.Int("vendors", len(refs.Vendors)),
	)

	session := catalog.NewViewSession(repository.NewProductRepository(db))
	if err := session.Refresh(ctx); err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}
	session.SetFilter(catalog.Request{
		Search: *search,
		Vendor: *vendor,
		Sort:   sortMode(*sortBy),
	})

	for _, p := range session.CurrentView() {
		fmt.Printf("%-8s %-30s %s | %s | %s | %s %s qty=%d discount=%d%% %s\n",
			p.Article, p.Name, p.CategoryName, p.ManufacturerName, p.VendorName,
			p.Price.StringFixed(2), p.Size, p.Quantity, p.Discount,
			assetManager.Resolve(p.Image),
		)
	}
}
