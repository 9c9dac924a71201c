package cmd

import (
	"log/slog"

	"foodmarket/internal/adapters/in/http"
	"foodmarket/internal/adapters/out/notify"
	"foodmarket/internal/adapters/out/postgres"
	"foodmarket/internal/adapters/out/postgres/dishrepo"
	"foodmarket/internal/adapters/out/postgres/locationrepo"
	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Every Create* method hands out
// a ready handler; shared infrastructure (database, event broker, matcher) is
// built once and reused.
type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	dishRepo     *dishrepo.GormDishRepository
	locationRepo *locationrepo.GormLocationRepository
	broker       *notify.Broker
	matcher      services.AssignmentMatcher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	matcher, err := services.NewAssignmentMatcherWithRadius(config.MatchRadiusKm)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		dishRepo:     dishrepo.NewGormDishRepository(gormDB),
		locationRepo: locationrepo.NewGormLocationRepository(gormDB),
		broker:       notify.NewBroker(),
		matcher:      matcher,
	}, nil
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f, c.dishRepo)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCartQuantityCommandHandler() commands.UpdateCartQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCartQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.broker)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.broker)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f, c.broker)
}

func (c *CompositionRoot) CreateRejectStaleOrdersCommandHandler() commands.RejectStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectStaleOrdersCommandHandler(f, c.broker)
}

func (c *CompositionRoot) CreateUpdatePartnerLocationCommandHandler() commands.UpdatePartnerLocationCommandHandler {
	return commands.NewUpdatePartnerLocationCommandHandler(c.locationRepo)
}

func (c *CompositionRoot) CreateSaveDishCommandHandler() commands.SaveDishCommandHandler {
	return commands.NewSaveDishCommandHandler(c.dishRepo)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.dishRepo)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyOrdersQueryHandler() queries.GetNearbyOrdersQueryHandler {
	// Read-only lookup, no transaction: the unit of work falls through to the
	// plain connection until Begin is called.
	orderRepo := c.uowFactory.Create().OrderRepository()
	return queries.NewGetNearbyOrdersQueryHandler(orderRepo, c.locationRepo, c.matcher)
}

// CreateServer builds the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateAddCartItemCommandHandler(),
		c.CreateRemoveCartItemCommandHandler(),
		c.CreateUpdateCartQuantityCommandHandler(),
		c.CreateClearCartCommandHandler(),
		c.CreateCheckoutCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateUpdatePartnerLocationCommandHandler(),
		c.CreateSaveDishCommandHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetNearbyOrdersQueryHandler(),
		c.broker,
	)
}

// CreateJobManager builds the background sweeps from the configured cutoffs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRejectStaleOrdersCommandHandler(),
		c.locationRepo,
		c.config.MaxPendingAge,
		c.config.MaxLocationAge,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
