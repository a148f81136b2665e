package routes

import (
	"context"
	"fmt"

	"loja_merch/internal/adapter/http/handlers"
	"loja_merch/internal/adapter/persistence/memory"
	"loja_merch/internal/adapter/persistence/postgres"
	"loja_merch/internal/adapter/persistence/repository"
	"loja_merch/internal/domain/entities"
	"loja_merch/internal/domain/lifecycle"
	"loja_merch/internal/infrastructure/cache"
	"loja_merch/internal/infrastructure/config"
	"loja_merch/internal/infrastructure/database"
	"loja_merch/internal/infrastructure/export"
	"loja_merch/internal/infrastructure/notification"
	"loja_merch/internal/infrastructure/payments"
	"loja_merch/internal/usecase"
	"loja_merch/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Dependencies holds the wired handlers plus whatever must be released on
// shutdown.
type Dependencies struct {
	OrderHandler *handlers.OrderHandler
	AdminHandler *handlers.AdminHandler
	Machine      *lifecycle.StateMachine

	closers []func() error
}

// Close stops the state machine first so in-flight notifications finish
// before their transport is closed.
func (d *Dependencies) Close() error {
	if d.Machine != nil {
		d.Machine.Close()
	}
	var firstErr error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (d *Dependencies) onClose(fn func() error) {
	d.closers = append(d.closers, fn)
}

// BuildDependencies wires stores, collaborators and use cases from cfg.
func BuildDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}
	fail := func(err error) (*Dependencies, error) {
		_ = deps.Close()
		return nil, err
	}

	repo, catalog, err := buildStores(ctx, cfg, logger, deps)
	if err != nil {
		return fail(err)
	}

	if cfg.Redis.Addr != "" {
		rdb, err := cache.InitRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return fail(err)
		}
		deps.onClose(rdb.Close)
		catalog = cache.NewCatalogCache(catalog, rdb, cfg.Redis.CacheTTL, logger)
	}

	notifier, err := buildNotifier(cfg, logger, deps)
	if err != nil {
		return fail(err)
	}

	var verifier interfaces.IProofVerifier
	if cfg.Payments.VerifyProofs {
		v, err := payments.NewMercadoPagoProofVerifier(cfg.Payments.MercadoPagoAccessToken, logger)
		if err != nil {
			return fail(err)
		}
		verifier = v
	}

	machine := lifecycle.New(lifecycle.Options{
		AllowTerminalOverride: cfg.Orders.AllowTerminalOverride,
		HookTimeout:           cfg.Orders.HookTimeout,
		Logger:                logger,
	})
	machine.Register(lifecycle.NotifyOnAwaitingPayment(notifier))
	deps.Machine = machine

	orders := usecase.NewOrderUseCase(repo, usecase.NewCatalogUseCase(catalog), machine, verifier, logger)
	reconciler := usecase.NewReconciler(repo, machine, logger)
	bulk := usecase.NewBulkStatusApplier(repo, machine, cfg.Orders.BulkConcurrency, logger)
	exporter := usecase.NewCSVExportUseCase(repo, export.NewCSVGenerator(), logger)

	deps.OrderHandler = handlers.NewOrderHandler(orders)
	deps.AdminHandler = handlers.NewAdminHandler(orders, reconciler, bulk, exporter)

	logger.Info("dependencies wired",
		zap.String("order_store", cfg.Store.Kind),
		zap.String("notifier", cfg.Notification.Kind),
		zap.Bool("catalog_cache", cfg.Redis.Addr != ""),
		zap.Bool("proof_verification", verifier != nil),
	)
	return deps, nil
}

func buildStores(ctx context.Context, cfg *config.Config, logger *zap.Logger, deps *Dependencies) (interfaces.IOrderRepository, interfaces.ICatalogProvider, error) {
	switch cfg.Store.Kind {
	case config.StoreMemory:
		return memory.NewOrderRepository(), memory.NewCatalog(entities.PricingCatalog{}), nil
	case config.StorePostgres, config.StoreDynamoDB:
	default:
		return nil, nil, fmt.Errorf("unsupported order store %q", cfg.Store.Kind)
	}

	// The catalog table lives in DynamoDB for both persistent order stores.
	ddb, err := database.ConnectDynamoDB(ctx, logger)
	if err != nil {
		return nil, nil, err
	}
	catalog := repository.NewCatalogDynamoRepository(ddb)

	if cfg.Store.Kind == config.StoreDynamoDB {
		return repository.NewOrderDynamoRepository(ddb), catalog, nil
	}

	db, err := database.InitDB(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, nil, err
	}
	deps.onClose(db.Close)
	return postgres.NewOrderRepository(db), catalog, nil
}

func buildNotifier(cfg *config.Config, logger *zap.Logger, deps *Dependencies) (interfaces.INotifier, error) {
	switch cfg.Notification.Kind {
	case config.NotifierKafka:
		producer, err := notification.InitProducer(cfg.Notification.Brokers, logger)
		if err != nil {
			return nil, err
		}
		deps.onClose(producer.Close)
		return notification.NewKafkaNotifier(producer, cfg.Notification.Topic, logger), nil
	case config.NotifierWebhook:
		return notification.NewWebhookNotifier(cfg.Notification.WebhookURL, cfg.Notification.Timeout, logger), nil
	default:
		return notification.NewLogNotifier(logger), nil
	}
}
