package usecase

import (
	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
)

// ValidateAmount checks the requested boost quantity is strictly positive.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}

// NormalizeServiceType resolves an empty category to the default one and
// rejects unknown values.
func NormalizeServiceType(serviceType model.ServiceType) (model.ServiceType, error) {
	if serviceType == "" {
		return model.ServiceMembers, nil
	}
	if !model.KnownServiceType(serviceType) {
		return "", domainErrors.ErrInvalidServiceType
	}
	return serviceType, nil
}
