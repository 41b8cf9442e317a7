package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	AllCategories       = "all"
	placeholderImageURL = "https://placehold.co/600x400/CCCCCC/FFF?text=New"
)

type CatalogService struct {
	DB  *gorm.DB
	IDs IDGenerator
}

func NewCatalogService(db *gorm.DB, ids IDGenerator) *CatalogService {
	return &CatalogService{DB: db, IDs: ids}
}

type ProductFilter struct {
	Category string
	Search   string
}

// ProductInput carries the admin form fields for create and update.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Category    string
	PrepTime    int
	Available   bool
	ExtraIDs    []string
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "is required")
	}
	if in.Price.IsNegative() {
		return invalid("price", "must not be negative")
	}
	if in.PrepTime < 1 {
		return invalid("prep_time", "must be a positive number of minutes")
	}
	if strings.TrimSpace(in.Category) == "" {
		return invalid("category", "is required")
	}
	return nil
}

// likeEscaper makes a search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// List returns products in catalog order, optionally narrowed by category and
// a case-insensitive name search.
func (s *CatalogService) List(filter ProductFilter) ([]models.Product, error) {
	query := s.DB.Preload("AllowedExtras").Order("position asc")

	category := strings.TrimSpace(filter.Category)
	if category != "" && !strings.EqualFold(category, AllCategories) {
		query = query.Where("category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(search))+"%")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	for i := range products {
		sortExtras(products[i].AllowedExtras)
	}
	return products, nil
}

// Categories lists distinct categories in order of first appearance.
func (s *CatalogService) Categories() ([]string, error) {
	products, err := s.List(ProductFilter{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (s *CatalogService) Get(id string) (*models.Product, error) {
	return getProduct(s.DB, id)
}

func (s *CatalogService) Extras() ([]models.Extra, error) {
	var extras []models.Extra
	if err := s.DB.Order("id asc").Find(&extras).Error; err != nil {
		return nil, fmt.Errorf("list extras: %w", err)
	}
	return extras, nil
}

// Create adds a product at the front of the catalog.
func (s *CatalogService) Create(in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var created *models.Product
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		extras, err := resolveExtras(tx, in.ExtraIDs)
		if err != nil {
			return err
		}

		var minPosition int64
		if err := tx.Model(&models.Product{}).Select("COALESCE(MIN(position), 1)").Scan(&minPosition).Error; err != nil {
			return err
		}

		product := models.Product{
			ID:            s.IDs.NewID("p"),
			Name:          strings.TrimSpace(in.Name),
			Description:   in.Description,
			Price:         in.Price,
			ImageURL:      in.ImageURL,
			Category:      strings.TrimSpace(in.Category),
			PrepTime:      in.PrepTime,
			Available:     in.Available,
			AllowedExtras: extras,
			Position:      minPosition - 1,
		}
		if product.ImageURL == "" {
			product.ImageURL = placeholderImageURL
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		created = &product
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"product_id": created.ID,
		"name":       created.Name,
	}).Info("Product created")
	return created, nil
}

// Update overwrites a product's fields in place. The id never changes and an
// empty image reference keeps the current one.
func (s *CatalogService) Update(id string, in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated *models.Product
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		product, err := getProduct(tx, id)
		if err != nil {
			return err
		}
		extras, err := resolveExtras(tx, in.ExtraIDs)
		if err != nil {
			return err
		}

		product.Name = strings.TrimSpace(in.Name)
		product.Description = in.Description
		product.Price = in.Price
		product.Category = strings.TrimSpace(in.Category)
		product.PrepTime = in.PrepTime
		product.Available = in.Available
		if in.ImageURL != "" {
			product.ImageURL = in.ImageURL
		}

		if err := tx.Omit("AllowedExtras").Save(product).Error; err != nil {
			return err
		}
		if err := tx.Model(product).Association("AllowedExtras").Replace(extras); err != nil {
			return err
		}
		product.AllowedExtras = extras
		updated = product
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"product_id": updated.ID,
		"name":       updated.Name,
	}).Info("Product updated")
	return updated, nil
}

func getProduct(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Preload("AllowedExtras").Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	sortExtras(product.AllowedExtras)
	return &product, nil
}

func resolveExtras(db *gorm.DB, ids []string) ([]models.Extra, error) {
	extras := make([]models.Extra, 0, len(ids))
	if len(ids) == 0 {
		return extras, nil
	}

	var found []models.Extra
	if err := db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("resolve extras: %w", err)
	}
	byID := make(map[string]models.Extra, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		e, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownExtra, id)
		}
		if !seen[id] {
			seen[id] = true
			extras = append(extras, e)
		}
	}
	sortExtras(extras)
	return extras, nil
}

func sortExtras(extras []models.Extra) {
	sort.SliceStable(extras, func(i, j int) bool { return extras[i].ID < extras[j].ID })
}
