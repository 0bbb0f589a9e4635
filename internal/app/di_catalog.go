package app

import (
	"fmt"

	catalogHTTP "github.com/narendran4787/BritTechDemo/internal/catalog/http"
	catalogRepository "github.com/narendran4787/BritTechDemo/internal/catalog/repository"
	catalogUseCase "github.com/narendran4787/BritTechDemo/internal/catalog/usecase"
)

// ProductRepository returns the product repository instance.
func (c *Container) ProductRepository() (catalogUseCase.ProductRepository, error) {
	c.productRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["productRepo"] = fmt.Errorf("failed to get database for product repository: %w", err)
			return
		}

		// Select the appropriate repository based on the database driver
		switch c.config.DBDriver {
		case "mysql":
			c.productRepo = catalogRepository.NewMySQLProductRepository(db)
		case "postgres":
			c.productRepo = catalogRepository.NewPostgreSQLProductRepository(db)
		default:
			c.initErrors["productRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["productRepo"]; exists {
		return nil, storedErr
	}
	return c.productRepo, nil
}

// ProductUseCase returns the product use case instance, decorated with metrics
// recording when metrics are enabled.
func (c *Container) ProductUseCase() (catalogUseCase.UseCase, error) {
	c.productUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["productUseCase"] = fmt.Errorf("failed to get tx manager for product use case: %w", err)
			return
		}

		productRepo, err := c.ProductRepository()
		if err != nil {
			c.initErrors["productUseCase"] = fmt.Errorf("failed to get product repository for product use case: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["productUseCase"] = fmt.Errorf("failed to get business metrics for product use case: %w", err)
			return
		}

		useCase := catalogUseCase.NewProductUseCase(txManager, productRepo)
		c.productUseCase = catalogUseCase.NewProductUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.productUseCase, nil
}

// ProductHandler returns the product HTTP handler instance.
func (c *Container) ProductHandler() (*catalogHTTP.ProductHandler, error) {
	c.productHandlerInit.Do(func() {
		productUseCase, err := c.ProductUseCase()
		if err != nil {
			c.initErrors["productHandler"] = fmt.Errorf("failed to get product use case for product handler: %w", err)
			return
		}
		c.productHandler = catalogHTTP.NewProductHandler(productUseCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["productHandler"]; exists {
		return nil, storedErr
	}
	return c.productHandler, nil
}
