package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/claimsdesk/backend/internal/domain/catalog"
)

// CatalogHandler serves the seeded product catalog
type CatalogHandler struct {
	BaseHandler
	products catalog.ProductRepository
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(products catalog.ProductRepository) *CatalogHandler {
	return &CatalogHandler{products: products}
}

// ProductResponse is the public product view
type ProductResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	PremiumDrops     string              `json:"premiumDrops"`
	PayoutDrops      string              `json:"payoutDrops"`
	CoverageSummary  string              `json:"coverageSummary,omitempty"`
	ShortDescription string              `json:"shortDescription,omitempty"`
	DescriptionMd    string              `json:"descriptionMd,omitempty"`
	Features         catalog.FeatureList `json:"features"`
	Category         string              `json:"category"`
	ValidityDays     int                 `json:"validityDays"`
}

func newProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		PremiumDrops:     p.PremiumDrops.String(),
		PayoutDrops:      p.PayoutDrops.String(),
		CoverageSummary:  p.CoverageSummary,
		ShortDescription: p.ShortDescription,
		DescriptionMd:    p.DescriptionMd,
		Features:         p.Features,
		Category:         string(p.Category),
		ValidityDays:     p.ValidityDays,
	}
}

// List godoc
// @Summary      List active products
// @Tags         catalog
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.products.FindActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	views := make([]ProductResponse, 0, len(products))
	for i := range products {
		views = append(views, newProductResponse(&products[i]))
	}
	h.Success(c, views)
}

// Get godoc
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /products/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.products.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newProductResponse(product))
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.GET("/products/:id", h.Get)
}
