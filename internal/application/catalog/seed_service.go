package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/claimsdesk/backend/internal/domain/catalog"
)

// SeedService loads the fixed demo products into the product store. It is
// run once by cmd/seed and is not part of the serving path.
type SeedService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewSeedService creates a new SeedService
func NewSeedService(productRepo catalog.ProductRepository, logger *zap.Logger) *SeedService {
	return &SeedService{
		productRepo: productRepo,
		logger:      logger.Named("seed"),
	}
}

// SeedResult reports what the seed run did
type SeedResult struct {
	Created int
	Skipped int
}

// Seed inserts every demo product that does not already exist. Re-running is
// safe: products are matched by name and never overwritten, since claims
// reference them by snapshot.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	for _, item := range demoProducts() {
		exists, err := s.productRepo.ExistsByName(ctx, item.name)
		if err != nil {
			return nil, err
		}
		if exists {
			s.logger.Info("Product already seeded, skipping", zap.String("name", item.name))
			result.Skipped++
			continue
		}

		product, err := catalog.NewProduct(item.name, item.premiumDrops, item.payoutDrops, item.category, item.validityDays)
		if err != nil {
			return nil, err
		}
		product.Describe(item.coverageSummary, item.shortDescription, item.descriptionMd, item.features)

		if err := s.productRepo.Save(ctx, product); err != nil {
			return nil, err
		}

		s.logger.Info("Seeded product",
			zap.String("name", product.Name),
			zap.String("category", string(product.Category)),
		)
		result.Created++
	}

	return result, nil
}
