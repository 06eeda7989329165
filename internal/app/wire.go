//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/cache/rediscache"
	"dispatch/internal/gateway/kafka/deliveryfeed"
	deliveries_available_get "dispatch/internal/handlers/rest/deliveries_available_get"
	deliveries_get "dispatch/internal/handlers/rest/deliveries_get"
	delivery_accept_post "dispatch/internal/handlers/rest/delivery_accept_post"
	delivery_advance_post "dispatch/internal/handlers/rest/delivery_advance_post"
	delivery_assign_post "dispatch/internal/handlers/rest/delivery_assign_post"
	delivery_cancel_post "dispatch/internal/handlers/rest/delivery_cancel_post"
	delivery_delete "dispatch/internal/handlers/rest/delivery_delete"
	delivery_get "dispatch/internal/handlers/rest/delivery_get"
	delivery_post "dispatch/internal/handlers/rest/delivery_post"
	delivery_reassign_post "dispatch/internal/handlers/rest/delivery_reassign_post"
	delivery_types_get "dispatch/internal/handlers/rest/delivery_types_get"
	login_post "dispatch/internal/handlers/rest/login_post"
	notification_read_post "dispatch/internal/handlers/rest/notification_read_post"
	notifications_get "dispatch/internal/handlers/rest/notifications_get"
	profile_get "dispatch/internal/handlers/rest/profile_get"
	profile_status_post "dispatch/internal/handlers/rest/profile_status_post"
	profiles_get "dispatch/internal/handlers/rest/profiles_get"
	promote_admin_post "dispatch/internal/handlers/rest/promote_admin_post"
	rider_approve_post "dispatch/internal/handlers/rest/rider_approve_post"
	rider_get "dispatch/internal/handlers/rest/rider_get"
	rider_post "dispatch/internal/handlers/rest/rider_post"
	rider_put "dispatch/internal/handlers/rest/rider_put"
	riders_get "dispatch/internal/handlers/rest/riders_get"
	signup_post "dispatch/internal/handlers/rest/signup_post"
	stats_get "dispatch/internal/handlers/rest/stats_get"
	track_get "dispatch/internal/handlers/rest/track_get"
	transactions_get "dispatch/internal/handlers/rest/transactions_get"
	"dispatch/internal/handlers/tasks/rider_sweep"
	"dispatch/internal/pkg/config"
	idFactory "dispatch/internal/pkg/factory/id"
	"dispatch/internal/pkg/factory/notification_handle"
	"dispatch/internal/pkg/factory/tracking_number"
	"dispatch/internal/pkg/hasher"
	"dispatch/internal/pkg/token"

	credentialRepo "dispatch/internal/repository/credential"
	deliveryRepo "dispatch/internal/repository/delivery"
	deliverytypeRepo "dispatch/internal/repository/deliverytype"
	notificationRepo "dispatch/internal/repository/notification"
	profileRepo "dispatch/internal/repository/profile"
	riderRepo "dispatch/internal/repository/rider"
	trackingRepo "dispatch/internal/repository/tracking"
	transactionRepo "dispatch/internal/repository/transaction"
	deliveryService "dispatch/internal/service/delivery"
	fareService "dispatch/internal/service/fare"
	notificationService "dispatch/internal/service/notification"
	profileService "dispatch/internal/service/profile"
	riderService "dispatch/internal/service/rider"
	statsService "dispatch/internal/service/stats"
	transactionService "dispatch/internal/service/transaction"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Application struct {
	ServiceProfile      ServiceProfile
	ServiceDelivery     ServiceDelivery
	ServiceRider        ServiceRider
	ServiceNotification ServiceNotification
	ServiceTransaction  ServiceTransaction
	ServiceStats        ServiceStats
	BackgroundWorkers   *background.Worker
}

type ServiceProfile interface {
	signup_post.Service
	login_post.Service
	promote_admin_post.Service
	profile_get.Service
	profiles_get.Service
	profile_status_post.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	delivery_delete.Service
	deliveries_get.Service
	deliveries_available_get.Service
	delivery_accept_post.Service
	delivery_assign_post.Service
	delivery_reassign_post.Service
	delivery_advance_post.Service
	delivery_cancel_post.Service
	delivery_types_get.Service
	track_get.Service
}

type ServiceRider interface {
	rider_post.Service
	rider_put.Service
	rider_get.Service
	riders_get.Service
	rider_approve_post.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
}

type ServiceTransaction interface {
	transactions_get.Service
}

type ServiceStats interface {
	stats_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,
		provideTrackingRepository,
		provideTransactionRepository,
		provideDeliveryTypeRepository,
		provideRiderRepository,
		provideProfileRepository,
		provideCredentialRepository,
		provideNotificationRepository,

		fareService.New,
		tracking_number.New,
		idFactory.New,
		hasher.New,
		provideTokenManager,
		provideTrackCache,
		provideFeedGateway,

		provideServiceProfile,
		provideServiceRider,
		provideServiceDelivery,
		notificationService.New,
		transactionService.New,
		statsService.New,

		provideRiderSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceProfile), new(*profileService.Profile)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),
		wire.Bind(new(ServiceTransaction), new(*transactionService.Transaction)),
		wire.Bind(new(ServiceStats), new(*statsService.Stats)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(deliveryService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(deliveryService.DeliveryTypeRepository), new(*deliverytypeRepo.Repository)),
		wire.Bind(new(deliveryService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(deliveryService.FareEstimator), new(*fareService.Estimator)),
		wire.Bind(new(deliveryService.TrackingNumberFactory), new(*tracking_number.TrackingNumberFactory)),
		wire.Bind(new(deliveryService.EventPublisher), new(*deliveryfeed.FeedGateway)),
		wire.Bind(new(deliveryService.TrackingCache), new(*rediscache.TrackCache)),

		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(riderService.ProfileService), new(*profileService.Profile)),

		wire.Bind(new(profileService.Repository), new(*profileRepo.Repository)),
		wire.Bind(new(profileService.CredentialRepository), new(*credentialRepo.Repository)),
		wire.Bind(new(profileService.PasswordHasher), new(*hasher.BcryptHasher)),
		wire.Bind(new(profileService.TokenIssuer), new(*token.Manager)),
		wire.Bind(new(profileService.IDFactory), new(*idFactory.IDFactory)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(transactionService.Repository), new(*transactionRepo.Repository)),

		wire.Bind(new(statsService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(statsService.TransactionRepository), new(*transactionRepo.Repository)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(profileService.TxManager), new(*tx.Manager)),

		wire.Bind(new(rider_sweep.Service), new(*riderService.Rider)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	HandlerFactory *notification_handle.EventHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideNotificationRepository,
		notificationService.New,
		provideEventHandlerFactory,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideTransactionRepository(querier *querier.Querier) *transactionRepo.Repository {
	return transactionRepo.New(querier)
}

func provideDeliveryTypeRepository(querier *querier.Querier) *deliverytypeRepo.Repository {
	return deliverytypeRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideProfileRepository(querier *querier.Querier) *profileRepo.Repository {
	return profileRepo.New(querier)
}

func provideCredentialRepository(querier *querier.Querier) *credentialRepo.Repository {
	return credentialRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideTrackCache(redisClient *redis.Client, cfg *config.Config) *rediscache.TrackCache {
	return rediscache.NewWithClient(redisClient, cfg.Redis.TrackingCacheTTL)
}

func provideFeedGateway(producer sarama.SyncProducer, cfg *config.Config) *deliveryfeed.FeedGateway {
	return deliveryfeed.New(producer, cfg.Kafka.Topic)
}

func provideServiceProfile(
	repository profileService.Repository,
	credentials profileService.CredentialRepository,
	passwordHasher profileService.PasswordHasher,
	tokenIssuer profileService.TokenIssuer,
	ids profileService.IDFactory,
	txManager profileService.TxManager,
	cfg *config.Config,
) *profileService.Profile {
	return profileService.New(
		repository,
		credentials,
		passwordHasher,
		tokenIssuer,
		ids,
		txManager,
		cfg.Auth.AdminSecret,
	)
}

func provideServiceRider(
	repository riderService.Repository,
	profiles riderService.ProfileService,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, profiles, txManager)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	trackingRepository deliveryService.TrackingRepository,
	transactionRepository deliveryService.TransactionRepository,
	typesRepository deliveryService.DeliveryTypeRepository,
	riders deliveryService.RiderService,
	fareEstimator deliveryService.FareEstimator,
	trackingNumbers deliveryService.TrackingNumberFactory,
	publisher deliveryService.EventPublisher,
	cache deliveryService.TrackingCache,
	txManager deliveryService.TxManager,
	log logger.Logger,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		trackingRepository,
		transactionRepository,
		typesRepository,
		riders,
		fareEstimator,
		trackingNumbers,
		publisher,
		cache,
		txManager,
		log,
	)
}

func provideEventHandlerFactory(notifications *notificationService.Notification) *notification_handle.EventHandlerFactory {
	return notification_handle.NewEventHandlerFactory(notifications)
}

func provideRiderSweepTask(
	log logger.Logger,
	riders rider_sweep.Service,
	cfg *config.Config,
) *rider_sweep.RiderSweep {
	return rider_sweep.NewRiderSweep(
		log,
		riders,
		cfg.Tasks.RiderSweepInterval,
		cfg.Tasks.RiderStalenessWindow,
	)
}

func provideTaskList(
	riderSweepTask *rider_sweep.RiderSweep,
) []background.Task {
	return []background.Task{
		riderSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
