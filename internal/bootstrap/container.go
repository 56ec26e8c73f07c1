package bootstrap

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/config"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/controller"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/logger"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/mailer"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/serverutils"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository/implementation"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/service"
)

// notificationTopic is the in-process topic between the notification
// service and the mail consumer.
const notificationTopic = "notifications.mail"

type Container struct {
	// Controllers
	HandsetController      controller.IHandsetController
	StaffController        controller.IStaffController
	AuthController         controller.IAuthController
	PackageController      controller.IPackageController
	NotificationController controller.INotificationController
	AllocationController   controller.IAllocationController

	// Background services (exposed for main.go to run)
	MailConsumerService    service.IMailConsumerService
	RenewalReminderService service.IRenewalReminderService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// Event bus between the lifecycle services and the mail consumer.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// Repositories
	handsetRepo := implementation.NewHandsetRepository(db)
	staffRepo := implementation.NewStaffRepository(db)
	allocationRepo := implementation.NewAllocationRepository(db)
	contractRepo := implementation.NewContractRepository(db)
	packageRepo := implementation.NewPackageRepository(db)
	notificationRepo := implementation.NewNotificationRepository(db)

	// Services
	notificationService := service.NewNotificationService(notificationRepo, pubSub, notificationTopic, sysLogger)
	handsetService := service.NewHandsetService(handsetRepo, staffRepo, allocationRepo, notificationService, sysLogger)
	allocationService := service.NewAllocationService(staffRepo, allocationRepo, contractRepo, cfg.Budget.ReservedFraction)
	staffService := service.NewStaffService(staffRepo, sysLogger)
	authService := service.NewAuthService(staffRepo, cfg.Auth.TokenKey, cfg.Auth.RefreshKey, sysLogger)
	packageService := service.NewPackageService(packageRepo)

	mailConsumerService := service.NewMailConsumerService(pubSub, notificationTopic, staffRepo, emailService, sysLogger)
	renewalReminderService := service.NewRenewalReminderService(handsetRepo, notificationService, sysLogger)

	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.TokenKey)

	return &Container{
		HandsetController:      controller.NewHandsetController(handsetService, jwtMiddleware),
		StaffController:        controller.NewStaffController(staffService, jwtMiddleware),
		AuthController:         controller.NewAuthController(authService, jwtMiddleware),
		PackageController:      controller.NewPackageController(packageService, jwtMiddleware),
		NotificationController: controller.NewNotificationController(notificationService, jwtMiddleware),
		AllocationController:   controller.NewAllocationController(allocationService, jwtMiddleware),

		MailConsumerService:    mailConsumerService,
		RenewalReminderService: renewalReminderService,

		Logger: sysLogger,
	}
}
