package controllers

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
)

// stubCache swaps the cache seams for an in-memory map and restores
// them when the test ends.
func stubCache(t *testing.T) map[string]string {
	t.Helper()

	store := map[string]string{}
	origGet, origSet := cacheGet, cacheSet
	origDelete, origDeletePat := cacheDelete, cacheDeletePat

	cacheGet = func(key string) (string, error) {
		if v, ok := store[key]; ok {
			return v, nil
		}
		return "", errors.New("cache miss")
	}
	cacheSet = func(key string, value interface{}, _ time.Duration) error {
		switch v := value.(type) {
		case []byte:
			store[key] = string(v)
		case string:
			store[key] = v
		}
		return nil
	}
	cacheDelete = func(key string) error {
		delete(store, key)
		return nil
	}
	cacheDeletePat = func(pattern string) error {
		prefix := strings.TrimSuffix(pattern, "*")
		for k := range store {
			if strings.HasPrefix(k, prefix) {
				delete(store, k)
			}
		}
		return nil
	}

	t.Cleanup(func() {
		cacheGet, cacheSet = origGet, origSet
		cacheDelete, cacheDeletePat = origDelete, origDeletePat
	})
	return store
}

type fakeMenuRepo struct {
	repository.MenuRepository
	categoryCalls int
	specialCalls  int
}

func (f *fakeMenuRepo) GetActiveCategories() ([]models.MenuCategory, error) {
	f.categoryCalls++
	return []models.MenuCategory{{ID: 1, Name: "Entradas"}}, nil
}

func (f *fakeMenuRepo) GetDailySpecialsByWeekday(weekday int) ([]models.DailySpecial, error) {
	f.specialCalls++
	return []models.DailySpecial{{ID: 1, Name: "Cazuela", Weekday: weekday}}, nil
}

type fakeRestaurantRepo struct {
	repository.RestaurantRepository
}

func (f *fakeRestaurantRepo) GetActive() (*models.Restaurant, error) {
	return &models.Restaurant{ID: 1, Name: "La Esquina", Address: "Calle Falsa 123"}, nil
}

type fakeMediaRepo struct {
	repository.MediaRepository
	sectionCalls int
}

func (f *fakeMediaRepo) GetActiveBySection(section string) ([]models.MediaImage, error) {
	f.sectionCalls++
	return []models.MediaImage{}, nil
}

type fakePromotionRepo struct {
	repository.PromotionRepository
	aggregateCalls int
}

func (f *fakePromotionRepo) GetActiveAggregates() ([]models.PromotionAggregate, error) {
	f.aggregateCalls++
	return []models.PromotionAggregate{{ID: 7, Name: "Promo Fibra", Active: true}}, nil
}

func TestLoadMenuDataCachesPerWeekday(t *testing.T) {
	store := stubCache(t)
	menuRepo := &fakeMenuRepo{}
	mediaRepo := &fakeMediaRepo{}
	pc := &PublicController{
		menuRepo:       menuRepo,
		restaurantRepo: &fakeRestaurantRepo{},
		mediaRepo:      mediaRepo,
	}

	first, err := pc.loadMenuData(3)
	require.NoError(t, err)
	assert.Equal(t, "La Esquina", first.Restaurant)
	assert.Equal(t, 1, menuRepo.categoryCalls)
	assert.Contains(t, store, "public:menu:v1:3")

	// second hit is served from the cache
	second, err := pc.loadMenuData(3)
	require.NoError(t, err)
	assert.Equal(t, first.Restaurant, second.Restaurant)
	assert.Equal(t, first.Categories, second.Categories)
	assert.Equal(t, 1, menuRepo.categoryCalls)
	assert.Equal(t, 1, menuRepo.specialCalls)
	assert.Equal(t, 1, mediaRepo.sectionCalls)

	// a different weekday has its own key
	_, err = pc.loadMenuData(4)
	require.NoError(t, err)
	assert.Equal(t, 2, menuRepo.specialCalls)
	assert.Contains(t, store, "public:menu:v1:4")
}

func TestInvalidateMenuCacheDropsAllWeekdays(t *testing.T) {
	store := stubCache(t)
	store["public:menu:v1:0"] = "{}"
	store["public:menu:v1:5"] = "{}"
	store[landingCacheKey] = "[]"

	invalidateMenuCache()

	assert.NotContains(t, store, "public:menu:v1:0")
	assert.NotContains(t, store, "public:menu:v1:5")
	assert.Contains(t, store, landingCacheKey)
}

func TestLoadActiveAggregatesUsesCache(t *testing.T) {
	store := stubCache(t)
	promoRepo := &fakePromotionRepo{}
	pc := &PublicController{promotionRepo: promoRepo}

	first, err := pc.loadActiveAggregates()
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Contains(t, store, landingCacheKey)

	second, err := pc.loadActiveAggregates()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, promoRepo.aggregateCalls)
}

type fakeServiceRepo struct {
	repository.ServiceRepository
}

func (f *fakeServiceRepo) Create(service *models.Service) error {
	service.ID = 1
	return nil
}

func TestServiceCreateInvalidatesLandingCache(t *testing.T) {
	store := stubCache(t)
	store[landingCacheKey] = "[]"

	app := fiber.New()
	sc := NewAdminServiceController(&fakeServiceRepo{})
	app.Post("/services", sc.HandleCreate)

	body := []byte(`{"name":"Fibra 600","price":20000,"regular_price":25000}`)
	req := httptest.NewRequest(fiber.MethodPost, "/services", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotContains(t, store, landingCacheKey)
}
