package packages

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
)

const (
	msgNameRequired           = "Tour package name is required."
	msgNameTooLong            = "Tour package name may not be greater than 255 characters."
	msgDescriptionRequired    = "Tour package description is required."
	msgDestinationsRequired   = "At least one destination is required."
	msgDestinationEmpty       = "Destination name cannot be empty."
	msgDestinationTooLong     = "Destination name may not be greater than 255 characters."
	msgStartDateRequired      = "Start date is required."
	msgStartDateInvalid       = "Start date must be a valid date (YYYY-MM-DD)."
	msgEndDateRequired        = "End date is required."
	msgEndDateInvalid         = "End date must be a valid date (YYYY-MM-DD)."
	msgEndDateAfterStart      = "End date must be after start date."
	msgPriceRequired          = "Package price is required."
	msgPriceNegative          = "Package price must be at least 0."
	msgMaxCapacityRequired    = "Maximum capacity is required."
	msgMaxCapacityMin         = "Maximum capacity must be at least 1."
	msgAvailableSlotsRequired = "Available slots is required."
	msgAvailableSlotsMin      = "Available slots must be at least 0."
	msgAvailableSlotsMax      = "Available slots may not be greater than maximum capacity."
	msgFacilitiesRequired     = "At least one facility is required."
	msgFacilityEmpty          = "Facility description cannot be empty."
	msgFacilityTooLong        = "Facility description may not be greater than 255 characters."
	msgStatusRequired         = "Package status is required."
	msgStatusInvalid          = "Package status must be active, inactive, or completed."
)

// buildPackage валидирует запрос и собирает из него тур-пакет
// requireSlots - на изменении available_slots обязателен и проверяется на [0, max_capacity]
func buildPackage(req *models.PackageRequest, requireSlots bool) (*domain.TourPackage, error) {
	errs := domain.FieldErrors{}
	pkg := &domain.TourPackage{}

	pkg.Name = strings.TrimSpace(req.Name)
	switch {
	case pkg.Name == "":
		errs.Add("name", msgNameRequired)
	case utf8.RuneCountInString(pkg.Name) > domain.MaxNameLength:
		errs.Add("name", msgNameTooLong)
	}

	pkg.Description = strings.TrimSpace(req.Description)
	if pkg.Description == "" {
		errs.Add("description", msgDescriptionRequired)
	}

	pkg.Destinations = cleanList(req.Destinations, "destinations", domain.MaxDestinationLength,
		msgDestinationsRequired, msgDestinationEmpty, msgDestinationTooLong, errs)
	pkg.Facilities = cleanList(req.Facilities, "facilities", domain.MaxFacilityLength,
		msgFacilitiesRequired, msgFacilityEmpty, msgFacilityTooLong, errs)

	start, startOK := parseDate(req.StartDate, "start_date", msgStartDateRequired, msgStartDateInvalid, errs)
	end, endOK := parseDate(req.EndDate, "end_date", msgEndDateRequired, msgEndDateInvalid, errs)
	if startOK && endOK && !end.After(start) {
		errs.Add("end_date", msgEndDateAfterStart)
	}
	pkg.StartDate, pkg.EndDate = start, end

	switch {
	case req.Price == nil:
		errs.Add("price", msgPriceRequired)
	case req.Price.IsNegative():
		errs.Add("price", msgPriceNegative)
	default:
		pkg.Price = req.Price.Round(domain.MoneyPrecision)
	}

	switch {
	case req.MaxCapacity == nil:
		errs.Add("max_capacity", msgMaxCapacityRequired)
	case *req.MaxCapacity < domain.MinPackageCapacity:
		errs.Add("max_capacity", msgMaxCapacityMin)
	default:
		pkg.MaxCapacity = *req.MaxCapacity
	}

	if requireSlots {
		switch {
		case req.AvailableSlots == nil:
			errs.Add("available_slots", msgAvailableSlotsRequired)
		case *req.AvailableSlots < 0:
			errs.Add("available_slots", msgAvailableSlotsMin)
		case pkg.MaxCapacity > 0 && *req.AvailableSlots > pkg.MaxCapacity:
			errs.Add("available_slots", msgAvailableSlotsMax)
		default:
			pkg.AvailableSlots = *req.AvailableSlots
		}
	} else {
		// Новый пакет всегда начинается с полностью свободными местами
		pkg.AvailableSlots = pkg.MaxCapacity
	}

	pkg.Status = domain.PackageStatus(strings.TrimSpace(req.Status))
	switch {
	case pkg.Status == "":
		errs.Add("status", msgStatusRequired)
	case !pkg.Status.IsValid():
		errs.Add("status", msgStatusInvalid)
	}

	if !errs.Empty() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	return pkg, nil
}

func cleanList(values []string, field string, maxLen int, msgRequired, msgEmpty, msgTooLong string, errs domain.FieldErrors) []string {
	if len(values) == 0 {
		errs.Add(field, msgRequired)
		return nil
	}

	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		switch {
		case v == "":
			errs.Add(field, msgEmpty)
		case utf8.RuneCountInString(v) > maxLen:
			errs.Add(field, msgTooLong)
		}
		cleaned = append(cleaned, v)
	}

	return cleaned
}

func parseDate(value, field, msgRequired, msgInvalid string, errs domain.FieldErrors) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, msgRequired)
		return time.Time{}, false
	}

	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		errs.Add(field, msgInvalid)
		return time.Time{}, false
	}

	return date, true
}
