package cmd

import (
	"log/slog"
	"time"

	"marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricing    services.PricingPolicy
	publisher  ports.OrderEventPublisher
	nameCache  queries.NameCache
	tokens     *http.TokenService
	logger     *slog.Logger

	closers []func() error
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	pricing, err := services.NewPricingPolicy(configs.CommissionBasisPoints, configs.DefaultDeliveryFee)
	if err != nil {
		panic(err)
	}

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    pricing,
		tokens:     http.NewTokenService(configs.JWTSecret, tokenTTL),
		logger:     logger,
	}

	if configs.KafkaHost != "" {
		publisher := kafka.NewOrderEventPublisher([]string{configs.KafkaHost}, configs.KafkaOrderChangedTopic)
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	}

	if configs.RedisAddr != "" {
		cache := redis.NewNameCache(configs.RedisAddr, "marketplace")
		root.nameCache = cache
		root.closers = append(root.closers, cache.Close)
	}

	return root
}

// Close releases the external connections opened by the root.
func (c *CompositionRoot) Close() {
	for _, close := range c.closers {
		if err := close(); err != nil {
			c.logger.Error("failed to close resource", "error", err)
		}
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.pricing, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateClaimJobCommandHandler() commands.ClaimJobCommandHandler {
	return commands.NewClaimJobCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderUserUoWFactory = FuncOrderUserUoWFactory(func() commands.OrderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetJobFeedQueryHandler() queries.GetJobFeedQueryHandler {
	return queries.NewGetJobFeedQueryHandler(c.gormDB, c.nameCache, c.logger)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	// Login reads users outside any command transaction.
	users := c.uowFactory.Create().UserRepository()

	return http.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateClaimJobCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateCreateProductCommandHandler(),
		c.CreateGetJobFeedQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetProductsQueryHandler(),
		users,
		c.tokens,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderProductUoWFactory func() commands.OrderProductUoW

func (f FuncOrderProductUoWFactory) Create() commands.OrderProductUoW {
	return f()
}

type FuncOrderUserUoWFactory func() commands.OrderUserUoW

func (f FuncOrderUserUoWFactory) Create() commands.OrderUserUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
