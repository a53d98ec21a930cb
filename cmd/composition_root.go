package cmd

import (
	"context"
	"log/slog"
	"time"

	"orderbot/internal/adapters/in/chat"
	"orderbot/internal/adapters/in/http"
	"orderbot/internal/adapters/out/csvfile"
	"orderbot/internal/adapters/out/memory/sessionrepo"
	"orderbot/internal/adapters/out/postgres/newcustomerrepo"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/services"
	"orderbot/internal/core/ports"
	"orderbot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	logger       *slog.Logger
	now          commands.Clock
	catalog      catalog.Catalog
	directory    customer.Directory
	sessions     ports.SessionRepository
	newCustomers ports.NewCustomerLog
	controller   *chat.Controller
}

// NewCompositionRoot loads the catalog and customer files and picks the
// new-customer sink. gormDB is only used, and must only be non-nil, when
// the sink is postgres.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		config:    config,
		logger:    logger,
		now:       time.Now,
		catalog:   csvfile.LoadCatalog(config.CatalogFile, logger),
		directory: csvfile.LoadCustomers(config.CustomerFile, logger),
		sessions:  sessionrepo.NewInMemorySessionRepository(),
	}

	if config.NewCustomerSink == NewCustomerSinkPostgres {
		repo := newcustomerrepo.NewGormNewCustomerRepository(gormDB, root.now)
		if err := repo.Migrate(ctx); err != nil {
			return CompositionRoot{}, err
		}
		root.newCustomers = repo
	} else {
		root.newCustomers = csvfile.NewNewCustomerFile(config.NewCustomerFile)
	}

	root.controller = chat.NewController(
		root.CreateStartOrderCommandHandler(),
		root.CreateAddItemCommandHandler(),
		root.CreateCompleteOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.now,
		root.logger,
	)

	return root, nil
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.sessions, c.directory, c.newCustomers, c.now, c.logger)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.sessions, c.catalog, services.NewPriceResolver(), c.now)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	renderer := services.NewSummaryRenderer(c.catalog, c.directory, c.now)
	return commands.NewCompleteOrderCommandHandler(c.sessions, renderer, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreateExpireIdleSessionsCommandHandler() commands.ExpireIdleSessionsCommandHandler {
	return commands.NewExpireIdleSessionsCommandHandler(c.sessions, c.now, c.logger)
}

// CreateChatController returns the controller shared by the HTTP server and
// the session expiry job.
func (c *CompositionRoot) CreateChatController() *chat.Controller {
	return c.controller
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.CreateChatController())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expiry := jobs.NewSessionExpiryJob(
		c.CreateExpireIdleSessionsCommandHandler(),
		c.controller,
		c.config.SessionSweepSchedule,
		c.config.SessionIdleTTL,
		c.logger,
	)
	return jobs.NewJobManager(expiry)
}
