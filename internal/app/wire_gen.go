// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"dispatch/internal/cache/rediscache"
	"dispatch/internal/gateway/kafka/deliveryfeed"
	"dispatch/internal/handlers/rest/deliveries_available_get"
	"dispatch/internal/handlers/rest/deliveries_get"
	"dispatch/internal/handlers/rest/delivery_accept_post"
	"dispatch/internal/handlers/rest/delivery_advance_post"
	"dispatch/internal/handlers/rest/delivery_assign_post"
	"dispatch/internal/handlers/rest/delivery_cancel_post"
	"dispatch/internal/handlers/rest/delivery_delete"
	"dispatch/internal/handlers/rest/delivery_get"
	"dispatch/internal/handlers/rest/delivery_post"
	"dispatch/internal/handlers/rest/delivery_reassign_post"
	"dispatch/internal/handlers/rest/delivery_types_get"
	"dispatch/internal/handlers/rest/login_post"
	"dispatch/internal/handlers/rest/notification_read_post"
	"dispatch/internal/handlers/rest/notifications_get"
	"dispatch/internal/handlers/rest/profile_get"
	"dispatch/internal/handlers/rest/profile_status_post"
	"dispatch/internal/handlers/rest/profiles_get"
	"dispatch/internal/handlers/rest/promote_admin_post"
	"dispatch/internal/handlers/rest/rider_approve_post"
	"dispatch/internal/handlers/rest/rider_get"
	"dispatch/internal/handlers/rest/rider_post"
	"dispatch/internal/handlers/rest/rider_put"
	"dispatch/internal/handlers/rest/riders_get"
	"dispatch/internal/handlers/rest/signup_post"
	"dispatch/internal/handlers/rest/stats_get"
	"dispatch/internal/handlers/rest/track_get"
	"dispatch/internal/handlers/rest/transactions_get"
	"dispatch/internal/handlers/tasks/rider_sweep"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/id"
	"dispatch/internal/pkg/factory/notification_handle"
	"dispatch/internal/pkg/factory/tracking_number"
	"dispatch/internal/pkg/hasher"
	"dispatch/internal/pkg/token"
	"dispatch/internal/repository/credential"
	"dispatch/internal/repository/delivery"
	"dispatch/internal/repository/deliverytype"
	notification2 "dispatch/internal/repository/notification"
	"dispatch/internal/repository/profile"
	"dispatch/internal/repository/rider"
	"dispatch/internal/repository/tracking"
	transaction2 "dispatch/internal/repository/transaction"
	delivery2 "dispatch/internal/service/delivery"
	"dispatch/internal/service/fare"
	"dispatch/internal/service/notification"
	profile2 "dispatch/internal/service/profile"
	rider2 "dispatch/internal/service/rider"
	"dispatch/internal/service/stats"
	"dispatch/internal/service/transaction"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer sarama.SyncProducer, redisClient *redis.Client, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideProfileRepository(querier)
	credentialRepository := provideCredentialRepository(querier)
	bcryptHasher := hasher.New()
	manager := provideTokenManager(cfg)
	idFactory := id.New()
	txManager := provideTxManager(pool)
	profile := provideServiceProfile(repository, credentialRepository, bcryptHasher, manager, idFactory, txManager, cfg)
	deliveryRepository := provideDeliveryRepository(querier)
	trackingRepository := provideTrackingRepository(querier)
	transactionRepository := provideTransactionRepository(querier)
	deliverytypeRepository := provideDeliveryTypeRepository(querier)
	riderRepository := provideRiderRepository(querier)
	rider := provideServiceRider(riderRepository, profile, txManager)
	estimator := fare.New()
	trackingNumberFactory := tracking_number.New()
	feedGateway := provideFeedGateway(producer, cfg)
	trackCache := provideTrackCache(redisClient, cfg)
	delivery := provideServiceDelivery(deliveryRepository, trackingRepository, transactionRepository, deliverytypeRepository, rider, estimator, trackingNumberFactory, feedGateway, trackCache, txManager, log)
	notificationRepository := provideNotificationRepository(querier)
	notificationNotification := notification.New(notificationRepository)
	transactionTransaction := transaction.New(transactionRepository)
	statsStats := stats.New(deliveryRepository, transactionRepository)
	riderSweep := provideRiderSweepTask(log, rider, cfg)
	v := provideTaskList(riderSweep)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceProfile:      profile,
		ServiceDelivery:     delivery,
		ServiceRider:        rider,
		ServiceNotification: notificationNotification,
		ServiceTransaction:  transactionTransaction,
		ServiceStats:        statsStats,
		BackgroundWorkers:   worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-events)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideNotificationRepository(querier)
	notificationNotification := notification.New(repository)
	eventHandlerFactory := provideEventHandlerFactory(notificationNotification)
	kafkaWorkerApp := &KafkaWorkerApp{
		HandlerFactory: eventHandlerFactory,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

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

type KafkaWorkerApp struct {
	HandlerFactory *notification_handle.EventHandlerFactory
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier2 *querier.Querier) *delivery.Repository {
	return delivery.New(querier2)
}

func provideTrackingRepository(querier2 *querier.Querier) *tracking.Repository {
	return tracking.New(querier2)
}

func provideTransactionRepository(querier2 *querier.Querier) *transaction2.Repository {
	return transaction2.New(querier2)
}

func provideDeliveryTypeRepository(querier2 *querier.Querier) *deliverytype.Repository {
	return deliverytype.New(querier2)
}

func provideRiderRepository(querier2 *querier.Querier) *rider.Repository {
	return rider.New(querier2)
}

func provideProfileRepository(querier2 *querier.Querier) *profile.Repository {
	return profile.New(querier2)
}

func provideCredentialRepository(querier2 *querier.Querier) *credential.Repository {
	return credential.New(querier2)
}

func provideNotificationRepository(querier2 *querier.Querier) *notification2.Repository {
	return notification2.New(querier2)
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
	repository profile2.Repository,
	credentials profile2.CredentialRepository,
	passwordHasher profile2.PasswordHasher,
	tokenIssuer profile2.TokenIssuer,
	ids profile2.IDFactory,
	txManager profile2.TxManager,
	cfg *config.Config,
) *profile2.Profile {
	return profile2.New(
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
	repository rider2.Repository,
	profiles rider2.ProfileService,
	txManager rider2.TxManager,
) *rider2.Rider {
	return rider2.New(repository, profiles, txManager)
}

func provideServiceDelivery(
	repository delivery2.Repository,
	trackingRepository delivery2.TrackingRepository,
	transactionRepository delivery2.TransactionRepository,
	typesRepository delivery2.DeliveryTypeRepository,
	riders delivery2.RiderService,
	fareEstimator delivery2.FareEstimator,
	trackingNumbers delivery2.TrackingNumberFactory,
	publisher delivery2.EventPublisher,
	cache delivery2.TrackingCache,
	txManager delivery2.TxManager,
	log logger.Logger,
) *delivery2.Delivery {
	return delivery2.New(
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

func provideEventHandlerFactory(notifications *notification.Notification) *notification_handle.EventHandlerFactory {
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
