package migration

import (
	"netbill/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.PackageModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
		&models.RenewalModel{},
	}
}
