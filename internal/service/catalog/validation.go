package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

var (
	mapLinkPattern  = regexp.MustCompile(`^(https?://)?(www\.)?google\.[a-z.]+/maps/.+$`)
	pincodePattern  = regexp.MustCompile(`^\d{6}$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// validateTurf проверяет форму создания площадки и возвращает разобранное время работы
func validateTurf(req *models.CreateTurfRequest) (types.TimeString, types.TimeString, error) {
	if err := requiredMaxLen("name", req.Name, domain.MaxTurfNameLength); err != nil {
		return "", "", err
	}
	if err := requiredMaxLen("address", req.Address, domain.MaxTurfAddressLength); err != nil {
		return "", "", err
	}
	if !mapLinkPattern.MatchString(strings.TrimSpace(req.MapLink)) {
		return "", "", fmt.Errorf("%w: mapLink must be a Google Maps link", ErrInvalidInput)
	}
	if err := requiredMaxLen("city", req.City, domain.MaxCityLength); err != nil {
		return "", "", err
	}
	if err := requiredMaxLen("state", req.State, domain.MaxStateLength); err != nil {
		return "", "", err
	}
	if !pincodePattern.MatchString(strings.TrimSpace(req.Pincode)) {
		return "", "", fmt.Errorf("%w: pincode must be 6 digits", ErrInvalidInput)
	}

	opening, err := types.NewTimeStringFromString(req.OpeningTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: openingTime: %v", ErrInvalidInput, err)
	}
	closing, err := types.NewTimeStringFromString(req.ClosingTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: closingTime: %v", ErrInvalidInput, err)
	}
	if !opening.IsBefore(closing) {
		return "", "", fmt.Errorf("%w: openingTime must be before closingTime", ErrInvalidInput)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return "", "", fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if req.BufferMinutes < domain.MinBufferMinutes || req.BufferMinutes > domain.MaxBufferMinutes {
		return "", "", fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	if len(req.Amenities) == 0 {
		return "", "", fmt.Errorf("%w: at least one amenity is required", ErrInvalidInput)
	}
	for _, a := range req.Amenities {
		if strings.TrimSpace(a) == "" {
			return "", "", fmt.Errorf("%w: amenity must not be empty", ErrInvalidInput)
		}
	}

	return opening, closing, nil
}

func validateSport(req *models.CreateSportRequest) error {
	if err := requiredMaxLen("name", req.Name, domain.MaxSportNameLength); err != nil {
		return err
	}
	if err := requiredMaxLen("description", req.Description, domain.MaxDescriptionLength); err != nil {
		return err
	}
	return nil
}

// normalizeCurrency возвращает код валюты в верхнем регистре (INR, если не указан)
func normalizeCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return domain.DefaultCurrency, nil
	}
	if !currencyPattern.MatchString(currency) {
		return "", fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidInput)
	}
	return currency, nil
}

// parseActive разбирает флаг Y/N (пустое значение - активен)
func parseActive(flag string) (bool, error) {
	if strings.TrimSpace(flag) == "" {
		return true, nil
	}
	parsed, err := domain.ParseActiveFlag(flag)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return parsed.Bool(), nil
}

func requiredMaxLen(field, value string, max int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
	}
	return nil
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
