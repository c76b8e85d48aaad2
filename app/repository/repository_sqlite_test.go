package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/internal/pkg/database"
)

// setupTestDB opens a throwaway in-memory database with the full
// schema and installs it as the shared handle.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Service{},
		&models.Plan{},
		&models.AddOn{},
		&models.Promotion{},
		&models.PromotionService{},
		&models.PromotionPlan{},
		&models.PromotionAddon{},
		&models.MediaImage{},
		&models.Restaurant{},
		&models.MenuCategory{},
		&models.Dish{},
		&models.DailySpecial{},
	))

	database.SetDB(db)
	return db
}

func TestServiceDeleteRefusedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	service := &models.Service{Name: "Fibra 600", Price: 20000, RegularPrice: 25000, PromoMonths: 12}
	require.NoError(t, repos.Service.Create(service))

	promotion := &models.Promotion{Name: "Promo Fibra", Discount: 10, Duration: 12, Active: true}
	require.NoError(t, repos.Promotion.Create(promotion))
	require.NoError(t, repos.Promotion.ReplaceRelations(promotion.ID, []uint{service.ID}, nil, nil))

	err := repos.Service.Delete(service.ID)
	assert.ErrorIs(t, err, ErrEntityInUse)

	// detaching the service unblocks the delete
	require.NoError(t, repos.Promotion.ReplaceRelations(promotion.ID, nil, nil, nil))
	assert.NoError(t, repos.Service.Delete(service.ID))
}

func TestPromotionReplaceRelationsReconciles(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	var ids []uint
	for _, name := range []string{"Fibra 300", "Fibra 600", "Fibra 940"} {
		s := &models.Service{Name: name, Price: 15000, RegularPrice: 20000, PromoMonths: 12}
		require.NoError(t, repos.Service.Create(s))
		ids = append(ids, s.ID)
	}

	promotion := &models.Promotion{Name: "Promo Fibra", Discount: 20, Duration: 6, Active: true}
	require.NoError(t, repos.Promotion.Create(promotion))

	require.NoError(t, repos.Promotion.ReplaceRelations(promotion.ID, ids[:2], nil, nil))
	aggregate, err := repos.Promotion.GetAggregate(promotion.ID)
	require.NoError(t, err)
	require.NotNil(t, aggregate)
	require.Len(t, aggregate.Services, 2)

	// swapping the membership set keeps the overlap and drops the rest
	require.NoError(t, repos.Promotion.ReplaceRelations(promotion.ID, ids[1:], nil, nil))
	aggregate, err = repos.Promotion.GetAggregate(promotion.ID)
	require.NoError(t, err)
	require.Len(t, aggregate.Services, 2)

	got := map[string]bool{}
	for _, s := range aggregate.Services {
		got[s.Name] = true
	}
	assert.True(t, got["Fibra 600"])
	assert.True(t, got["Fibra 940"])
	assert.False(t, got["Fibra 300"])
}

func TestPlanGetAllOrderedByPrice(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	require.NoError(t, repos.Plan.Create(&models.Plan{Name: "TV Full", Price: 9990, PromoMonths: 12}))
	require.NoError(t, repos.Plan.Create(&models.Plan{Name: "TV Lite", Price: 5990, PromoMonths: 12}))

	plans, err := repos.Plan.GetAll()
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "TV Lite", plans[0].Name)
	assert.Equal(t, "TV Full", plans[1].Name)

	total, err := repos.Plan.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestMediaLookupByUUIDAndSection(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	hero := &models.MediaImage{Title: "Portada", FileName: "hero.jpg", FilePath: "/uploads/hero.jpg", Section: models.MEDIA_SECTION_HERO}
	require.NoError(t, repos.Media.Create(hero))
	require.NotEmpty(t, hero.UUID)

	hidden := &models.MediaImage{Title: "Oculta", FileName: "old.jpg", FilePath: "/uploads/old.jpg", Section: models.MEDIA_SECTION_HERO}
	require.NoError(t, repos.Media.Create(hidden))
	require.NoError(t, db.Model(hidden).Update("is_active", false).Error)

	found, err := repos.Media.GetByUUID(hero.UUID)
	require.NoError(t, err)
	assert.Equal(t, hero.ID, found.ID)

	active, err := repos.Media.GetActiveBySection(models.MEDIA_SECTION_HERO)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Portada", active[0].Title)
}
