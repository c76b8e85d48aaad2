package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
	"github.com/altofibra/catalog/internal/pkg/env"
	"github.com/altofibra/catalog/internal/pkg/metrics/counter"
	"github.com/altofibra/catalog/internal/pkg/pricing"
	"github.com/altofibra/catalog/internal/pkg/schedule"
)

const publicCacheTTL = 5 * time.Minute

// PublicController serves the marketing pages and the pricing
// endpoints behind them.
type PublicController struct {
	promotionRepo  repository.PromotionRepository
	planRepo       repository.PlanRepository
	addonRepo      repository.AddonRepository
	mediaRepo      repository.MediaRepository
	menuRepo       repository.MenuRepository
	restaurantRepo repository.RestaurantRepository
}

// NewPublicController creates a new public controller
func NewPublicController(repos *repository.Repositories) *PublicController {
	return &PublicController{
		promotionRepo:  repos.Promotion,
		planRepo:       repos.Plan,
		addonRepo:      repos.Addon,
		mediaRepo:      repos.Media,
		menuRepo:       repos.Menu,
		restaurantRepo: repos.Restaurant,
	}
}

// loadActiveAggregates reads the active promotion aggregates through
// the cache. Cache trouble only costs the round trip to the database.
func (pc *PublicController) loadActiveAggregates() ([]models.PromotionAggregate, error) {
	if cached, err := cacheGet(landingCacheKey); err == nil && cached != "" {
		var aggregates []models.PromotionAggregate
		if err := json.Unmarshal([]byte(cached), &aggregates); err == nil {
			return aggregates, nil
		}
	}

	aggregates, err := pc.promotionRepo.GetActiveAggregates()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(aggregates); err == nil {
		if err := cacheSet(landingCacheKey, raw, publicCacheTTL); err != nil {
			log.Printf("Warning: could not cache landing aggregates: %v", err)
		}
	}
	return aggregates, nil
}

// HandleLanding renders the ISP landing page.
func (pc *PublicController) HandleLanding(c *fiber.Ctx) error {
	aggregates, err := pc.loadActiveAggregates()
	if err != nil {
		return writeError(c, err)
	}
	plans, err := pc.planRepo.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	addons, err := pc.addonRepo.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	heroImages, err := pc.mediaRepo.GetActiveBySection(models.MEDIA_SECTION_HERO)
	if err != nil {
		return writeError(c, err)
	}

	return c.Render("landing", fiber.Map{
		"Promotions": aggregates,
		"Plans":      plans,
		"Addons":     addons,
		"HeroImages": heroImages,
		"WhatsApp":   env.GetEnv("WHATSAPP_NUMBER", ""),
	})
}

// HandlePromotionDetail renders a single promotion's pricing card
// with its selectable plans and add-ons.
func (pc *PublicController) HandlePromotionDetail(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid promotion id")
	}

	aggregate, err := pc.promotionRepo.GetAggregate(id)
	if err != nil {
		return writeError(c, err)
	}
	if aggregate == nil || !aggregate.Active {
		return c.Status(fiber.StatusNotFound).Render("not_found", fiber.Map{})
	}

	if err := counter.AddPromotionView(aggregate.ID); err != nil {
		log.Printf("[Public] view counter unavailable: %v", err)
	}

	return c.Render("promotion", fiber.Map{
		"Promotion": aggregate,
		"WhatsApp":  env.GetEnv("WHATSAPP_NUMBER", ""),
	})
}

// HandleMenu renders the restaurant menu page.
// menuPayload is the per-weekday menu data cached between requests.
type menuPayload struct {
	Restaurant string                `json:"restaurant"`
	Address    string                `json:"address"`
	WhatsApp   string                `json:"whatsapp"`
	Categories []models.MenuCategory `json:"categories"`
	Specials   []models.DailySpecial `json:"specials"`
	Week       schedule.Week         `json:"week"`
	Gallery    []models.MediaImage   `json:"gallery"`
}

// loadMenuData assembles the menu page data through the cache, keyed
// by weekday because the specials change each day.
func (pc *PublicController) loadMenuData(weekday int) (*menuPayload, error) {
	key := menuCacheKey(weekday)
	if cached, err := cacheGet(key); err == nil && cached != "" {
		var payload menuPayload
		if err := json.Unmarshal([]byte(cached), &payload); err == nil {
			return &payload, nil
		}
	}

	categories, err := pc.menuRepo.GetActiveCategories()
	if err != nil {
		return nil, err
	}
	specials, err := pc.menuRepo.GetDailySpecialsByWeekday(weekday)
	if err != nil {
		return nil, err
	}

	restaurant, err := pc.restaurantRepo.GetActive()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	payload := &menuPayload{
		Categories: categories,
		Specials:   specials,
	}
	var scheduleJSON []byte
	if restaurant != nil {
		scheduleJSON = restaurant.ScheduleJSON
		payload.Restaurant = restaurant.Name
		payload.Address = restaurant.Address
		payload.WhatsApp = restaurant.WhatsApp
	}
	payload.Week = schedule.Decode(scheduleJSON)

	payload.Gallery, err = pc.mediaRepo.GetActiveBySection(models.MEDIA_SECTION_MENU)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(payload); err == nil {
		if err := cacheSet(key, raw, publicCacheTTL); err != nil {
			log.Printf("Warning: could not cache menu data: %v", err)
		}
	}
	return payload, nil
}

func (pc *PublicController) HandleMenu(c *fiber.Ctx) error {
	payload, err := pc.loadMenuData(int(time.Now().Weekday()))
	if err != nil {
		return writeError(c, err)
	}

	return c.Render("menu", fiber.Map{
		"Restaurant": payload.Restaurant,
		"Address":    payload.Address,
		"WhatsApp":   payload.WhatsApp,
		"Categories": payload.Categories,
		"Specials":   payload.Specials,
		"Hours":      schedule.Preview(payload.Week),
		"Gallery":    payload.Gallery,
	})
}

type quoteResponse struct {
	pricing.Quote
	TotalNowDisplay   string `json:"total_now_display"`
	TotalAfterDisplay string `json:"total_after_display"`
	Summary           string `json:"summary"`
	WhatsAppLink      string `json:"whatsapp_link"`
}

// HandleQuote computes the price for a selection. The calculators on
// the landing page call this on every change.
func (pc *PublicController) HandleQuote(c *fiber.Ctx) error {
	var sel pricing.Selection
	if err := c.BodyParser(&sel); err != nil {
		return badRequest(c, "invalid request body")
	}

	quote := pricing.Compute(sel)
	summary := pricing.Summary(sel)
	return c.JSON(quoteResponse{
		Quote:             quote,
		TotalNowDisplay:   pricing.FormatCLP(quote.TotalNow),
		TotalAfterDisplay: pricing.FormatCLP(quote.TotalAfter),
		Summary:           summary,
		WhatsAppLink:      pricing.WhatsAppLink(env.GetEnv("WHATSAPP_NUMBER", ""), summary),
	})
}

// HandleContact redirects to a WhatsApp chat prefilled with the given
// message text.
func (pc *PublicController) HandleContact(c *fiber.Ctx) error {
	text := c.Query("text")
	if text == "" {
		return badRequest(c, "text parameter missing")
	}
	number := c.Query("number")
	if number == "" {
		number = env.GetEnv("WHATSAPP_NUMBER", "")
	}
	return c.Redirect(pricing.WhatsAppLink(number, text), fiber.StatusFound)
}
