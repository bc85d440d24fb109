package domain

import "github.com/shopspring/decimal"

// CommissionRate ставка комиссии агента от суммы бронирования (10%)
var CommissionRate = decimal.RequireFromString("0.10")

// MoneyPrecision количество знаков после запятой для денежных сумм
const MoneyPrecision int32 = 2

// Business validation constants
const (
	MaxNameLength         = 255
	MaxEmailLength        = 255
	MaxPhoneLength        = 20
	MaxDestinationLength  = 255
	MaxFacilityLength     = 255
	MinNumberOfPeople     = 1
	MinPackageCapacity    = 1
	RecentBookingsLimit   = 5
	FeaturedPackagesLimit = 6
	ReportRecentBookings  = 5
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PendingCommissionStatuses статусы, комиссия по которым еще не получена
var PendingCommissionStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// BookingStatuses все допустимые статусы бронирования
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
