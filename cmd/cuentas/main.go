package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuentas/internal/config"
	dl "cuentas/internal/core/domain/logging"
	drl "cuentas/internal/core/domain/rate_limiter"
	changepassword "cuentas/internal/core/services/change_password"
	createaccount "cuentas/internal/core/services/create_account"
	deleteaccount "cuentas/internal/core/services/delete_account"
	editaccount "cuentas/internal/core/services/edit_account"
	getaccountbycredentials "cuentas/internal/core/services/get_account_by_credentials"
	getaccountbyid "cuentas/internal/core/services/get_account_by_id"
	listaccounts "cuentas/internal/core/services/list_accounts"
	ratelimiting "cuentas/internal/core/services/rate_limiting"
	resetpassword "cuentas/internal/core/services/reset_password"
	saveprofile "cuentas/internal/core/services/save_profile"
	dbaccount "cuentas/internal/db/account"
	httpapp "cuentas/internal/http"
	"cuentas/internal/implementations/email"
	"cuentas/internal/implementations/logging"
	objectstorage "cuentas/internal/implementations/object_storage"
	passwordgenerator "cuentas/internal/implementations/password_generator"
	passwordhasher "cuentas/internal/implementations/password_hasher"
	ratelimiter "cuentas/internal/implementations/rate_limiter"
	templatefetcher "cuentas/internal/implementations/template_fetcher"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewZapLogger()
	defer logger.Sync()

	pool, err := pgxpool.Connect(context.Background(), cfg.PostgresqlURL)
	if err != nil {
		panic("Could not connect to the database.")
	}
	defer pool.Close()

	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	defer redisClient.Close()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		panic(err)
	}

	now := func() time.Time { return time.Now().UTC() }

	accountRepository := dbaccount.NewPgxRepository(pool)
	passwordHasher := passwordhasher.NewSha256()
	passwordGenerator := passwordgenerator.NewGenerator()
	templateFetcher := templatefetcher.NewHTTP(cfg.TemplateFetchTimeout)
	notificationSender := email.NewSesSender(awsCfg, cfg.EmailSender)
	objectStorage := objectstorage.NewS3Storage(awsCfg, cfg.S3Bucket, cfg.S3Endpoint)
	rateLimiter := ratelimiter.NewRedis(redisClient, logger, now)

	services := httpapp.Services{
		CreateAccount: createaccount.New(
			logger,
			accountRepository,
			passwordGenerator,
			passwordHasher,
			objectStorage,
			templateFetcher,
			notificationSender,
			now,
		),
		EditAccount:    editaccount.New(logger, accountRepository, objectStorage),
		DeleteAccount:  deleteaccount.New(logger, accountRepository, objectStorage),
		ChangePassword: changepassword.New(logger, accountRepository, passwordHasher),
		ResetPassword: ratelimiting.WithRateLimiting(
			logger,
			rateLimiter,
			drl.Limit{Interval: drl.Hour, Value: cfg.ResetPasswordRateLimitPerHour},
			resetpassword.New(
				logger,
				accountRepository,
				passwordGenerator,
				passwordHasher,
				templateFetcher,
				notificationSender,
			),
		),
		SaveProfile: saveprofile.New(logger, accountRepository),
		GetAccountByCredentials: ratelimiting.WithRateLimiting(
			logger,
			rateLimiter,
			drl.Limit{Interval: drl.Hour, Value: cfg.LogInRateLimitPerHour},
			getaccountbycredentials.New(logger, accountRepository, passwordHasher),
		),
		GetAccountByID: getaccountbyid.New(logger, accountRepository),
		ListAccounts:   listaccounts.New(logger, accountRepository),
	}

	server := httpapp.NewServer(cfg.Addr, httpapp.NewRouter(services))
	go start(server, logger, cfg)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), server, logger)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, logger dl.Logger, cfg *config.Config) {
	logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", cfg.IsTestMode),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, logger dl.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	logger.Info(ctx, "HTTP server has shutdowned.")
}
