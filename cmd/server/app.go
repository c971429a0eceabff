package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	ahandler "charity/internal/announcement/handler"
	"charity/internal/announcement/queue"
	aservice "charity/internal/announcement/service"
	astore "charity/internal/announcement/store"
	"charity/internal/announcement/worker"
	authhandler "charity/internal/auth/handler"
	authservice "charity/internal/auth/service"
	authstore "charity/internal/auth/store"
	bhandler "charity/internal/beneficiary/handler"
	bservice "charity/internal/beneficiary/service"
	bstore "charity/internal/beneficiary/store"
	"charity/internal/cache"
	"charity/internal/charity"
	"charity/internal/document"
	jwttoken "charity/internal/jwt_token"
	"charity/internal/location"
	"charity/internal/platform/config"
	"charity/internal/platform/kafka/consumer"
	"charity/internal/platform/kafka/producer"
	"charity/internal/platform/metrics"
	"charity/internal/platform/postgres"
	platformredis "charity/internal/platform/redis"
	"charity/internal/ratelimit/authlockout"
	lockoutstore "charity/internal/ratelimit/store"
	rhandler "charity/internal/request/handler"
	rmodels "charity/internal/request/models"
	rservice "charity/internal/request/service"
	rstore "charity/internal/request/store"
	"charity/internal/search"
	"charity/pkg/platform/circuit"
	txcontext "charity/pkg/platform/tx"
)

const jwtAudience = "charity-api"

// app holds the infrastructure clients and the HTTP handlers built on them.
type app struct {
	db       *sql.DB
	redis    *platformredis.Client
	producer *producer.Producer
	consumer *consumer.Consumer
	search   *search.Client
	queue    interface{ Wait() }

	metrics *metrics.Metrics
	tokens  *jwttoken.JWTService
	auth    *authservice.Service

	authHandler        *authhandler.Handler
	locationHandler    *location.Handler
	charityHandler     *charity.Handler
	beneficiaryHandler *bhandler.BeneficiaryHandler
	beneficiaryAdmin   *bhandler.CharityHandler
	requestHandler     *rhandler.BeneficiaryHandler
	requestAdmin       *rhandler.CharityHandler
	lookupHandler      *rhandler.LookupHandler
	announcements      *ahandler.Handler
	documents          *document.Handler
	documentDir        string
}

type stores struct {
	users         authservice.UserStore
	charities     charity.Store
	locations     location.Store
	beneficiaries bservice.Store
	requests      rservice.Store
	announcements aservice.Store
	tx            txcontext.Runner
}

// newStores falls back to in-memory stores when no database is configured.
func newStores(db *sql.DB) stores {
	if db == nil {
		return stores{
			users:         authstore.NewInMemory(),
			charities:     charity.NewInMemory(),
			locations:     location.NewInMemory(),
			beneficiaries: bstore.NewInMemory(),
			requests:      rstore.NewInMemory(),
			announcements: astore.NewInMemory(),
			tx:            txcontext.NoopRunner{},
		}
	}
	return stores{
		users:         authstore.NewPostgres(db),
		charities:     charity.NewPostgres(db),
		locations:     location.NewPostgres(db),
		beneficiaries: bstore.NewPostgres(db),
		requests:      rstore.NewPostgres(db),
		announcements: astore.NewPostgres(db),
		tx:            txcontext.NewPostgresRunner(db),
	}
}

// lazyRequests lets the announcement service be built before the request
// service that enqueues into it.
type lazyRequests struct {
	svc *rservice.Service
}

func (l *lazyRequests) Get(ctx context.Context, actor rmodels.Actor, id int64) (*rmodels.Detail, error) {
	return l.svc.Get(ctx, actor, id)
}

func build(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	a := &app{metrics: metrics.New()}

	var err error
	if a.db, err = postgres.Open(ctx, cfg.Database); err != nil {
		return nil, err
	}
	if a.db == nil {
		log.Warn("DATABASE_URL not set, using in-memory stores")
	} else if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, a.db); err != nil {
			a.close()
			return nil, err
		}
	}

	if a.redis, err = platformredis.New(ctx, cfg.Redis); err != nil {
		a.close()
		return nil, err
	}
	backend := cache.Backend(cache.NewMemoryBackend())
	if a.redis != nil {
		backend = cache.NewRedisBackend(a.redis.Client)
	} else {
		log.Warn("REDIS_URL not set, caching in process memory")
	}
	cacheManager := cache.New(backend, cfg.CacheTTL, cache.WithLogger(log), cache.WithMetrics(a.metrics))

	a.search = search.NewClient(cfg.Search)
	var searcher search.Searcher
	if a.search != nil {
		searcher = a.search
	}
	filter := search.NewFilter(searcher, log, a.metrics,
		search.WithBreaker(circuit.New("search", circuit.WithCooldown(cfg.Search.BreakerCooldown))))

	st := newStores(a.db)
	locations := location.NewService(st.locations, log)
	charities := charity.NewService(st.charities, log)
	beneficiaries := bservice.NewService(st.beneficiaries, locations,
		bservice.WithCache(cacheManager),
		bservice.WithSearch(filter),
		bservice.WithTxRunner(st.tx),
		bservice.WithLogger(log),
	)

	a.tokens = jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, jwtAudience)
	authOpts := []authservice.Option{
		authservice.WithTxRunner(st.tx),
		authservice.WithMetrics(a.metrics),
		authservice.WithLogger(log),
	}
	if cfg.Lockout.Attempts > 0 {
		authOpts = append(authOpts, authservice.WithLockout(a.loginLockout(cfg.Lockout, log)))
	}
	a.auth = authservice.New(st.users, charities, beneficiaries, a.tokens,
		authservice.Config{TokenTTL: cfg.Server.TokenTTL}, authOpts...)

	scope := &lazyRequests{}
	announcements := aservice.NewService(st.announcements, scope,
		aservice.WithCache(cacheManager),
		aservice.WithLogger(log),
	)
	jobs, err := a.announcementQueue(ctx, cfg.Kafka, announcements, log)
	if err != nil {
		a.close()
		return nil, err
	}
	requests := rservice.NewService(st.requests, beneficiaries, charities,
		rservice.WithCache(cacheManager),
		rservice.WithSearch(filter),
		rservice.WithAnnouncer(jobs),
		rservice.WithTxRunner(st.tx),
		rservice.WithMetrics(a.metrics),
		rservice.WithLogger(log),
	)
	scope.svc = requests

	docs, err := newDocumentStore(ctx, cfg.Documents)
	if err != nil {
		a.close()
		return nil, err
	}
	if disk, ok := docs.(*document.DiskStore); ok {
		a.documentDir = disk.Dir()
	}

	a.authHandler = authhandler.New(a.auth, beneficiaries, log)
	a.locationHandler = location.NewHandler(locations, log)
	a.charityHandler = charity.NewHandler(charities, log)
	a.beneficiaryHandler = bhandler.NewBeneficiaryHandler(beneficiaries, log)
	a.beneficiaryAdmin = bhandler.NewCharityHandler(beneficiaries, log)
	a.requestHandler = rhandler.NewBeneficiaryHandler(requests, log)
	a.requestAdmin = rhandler.NewCharityHandler(requests, log)
	a.lookupHandler = rhandler.NewLookupHandler(requests, log)
	a.announcements = ahandler.New(announcements, log)
	a.documents = document.NewHandler(docs, log)
	return a, nil
}

// loginLockout shares failure counts through Redis when it is configured.
func (a *app) loginLockout(cfg config.LockoutConfig, log *slog.Logger) *authlockout.Service {
	store := authlockout.Store(lockoutstore.NewInMemory())
	if a.redis != nil {
		store = lockoutstore.NewRedis(a.redis.Client)
	}
	return authlockout.New(store,
		authlockout.WithConfig(authlockout.Config{Attempts: cfg.Attempts, Window: cfg.Window, LockFor: cfg.LockFor}),
		authlockout.WithMetrics(a.metrics),
		authlockout.WithLogger(log),
	)
}

type enqueuer interface {
	rservice.Enqueuer
	Wait()
}

// announcementQueue publishes to Kafka when brokers are configured and
// records in process otherwise.
func (a *app) announcementQueue(ctx context.Context, cfg config.KafkaConfig, recorder queue.Recorder, log *slog.Logger) (enqueuer, error) {
	if len(cfg.Brokers) == 0 {
		log.Warn("KAFKA_BROKERS not set, recording announcements in process")
		q := queue.NewInline(recorder, a.metrics, log)
		a.queue = q
		return q, nil
	}

	var err error
	if a.producer, err = producer.New(cfg.Brokers, log); err != nil {
		return nil, err
	}
	if err := a.producer.EnsureTopic(ctx, cfg.AnnouncementTopic, 3, 1); err != nil {
		return nil, fmt.Errorf("ensure announcement topic: %w", err)
	}
	w := worker.New(recorder, a.metrics, log)
	a.consumer, err = consumer.New(consumer.Config{
		Brokers: cfg.Brokers,
		GroupID: cfg.AnnouncementGroup,
		Topics:  []string{cfg.AnnouncementTopic},
	}, w.Router(), log)
	if err != nil {
		return nil, err
	}
	q := queue.NewKafka(a.producer, cfg.AnnouncementTopic, a.metrics, log)
	a.queue = q
	return q, nil
}

func newDocumentStore(ctx context.Context, cfg config.DocumentConfig) (document.Store, error) {
	switch cfg.Backend {
	case "", "disk":
		return document.NewDiskStore(cfg.Dir), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("DOCUMENT_S3_BUCKET is required for the s3 document backend")
		}
		client, err := document.NewS3Client(ctx, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
		return document.NewS3Store(client, cfg.S3Bucket), nil
	}
	return nil, fmt.Errorf("unknown document backend %q", cfg.Backend)
}

// close waits for queued announcements, then releases every client.
func (a *app) close() {
	if a.queue != nil {
		a.queue.Wait()
	}
	if a.producer != nil {
		a.producer.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
