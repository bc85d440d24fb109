package domain

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Сообщения ошибок валидации бронирования
const (
	MsgTourPackageRequired      = "Tour package selection is required."
	MsgCustomerNameRequired     = "Customer name is required."
	MsgCustomerNameTooLong      = "Customer name may not be greater than 255 characters."
	MsgCustomerEmailRequired    = "Customer email is required."
	MsgCustomerEmailInvalid     = "Please provide a valid email address."
	MsgCustomerEmailTooLong     = "Customer email may not be greater than 255 characters."
	MsgCustomerPhoneRequired    = "Customer phone number is required."
	MsgCustomerPhoneTooLong     = "Customer phone number may not be greater than 20 characters."
	MsgNumberOfPeopleMin        = "Number of people must be at least 1."
	MsgBookingStatusRequired    = "Booking status is required."
	MsgBookingStatusInvalid     = "Invalid booking status."
	MsgNotEnoughSlotsForPackage = "Not enough available slots for this package."
	MsgNotEnoughSlotsForChange  = "Not enough available slots for this change."
)

// Имена полей в ошибках валидации
const (
	FieldTourPackageID  = "tour_package_id"
	FieldCustomerName   = "customer_name"
	FieldCustomerEmail  = "customer_email"
	FieldCustomerPhone  = "customer_phone"
	FieldNumberOfPeople = "number_of_people"
	FieldStatus         = "status"
)

// CustomerDetails данные клиента и количество человек в бронировании
type CustomerDetails struct {
	Name           string
	Email          string
	Phone          string
	NumberOfPeople int
}

// Validate добавляет в errs ошибки по полям клиента
func (c CustomerDetails) Validate(errs FieldErrors) {
	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		errs.Add(FieldCustomerName, MsgCustomerNameRequired)
	case utf8.RuneCountInString(name) > MaxNameLength:
		errs.Add(FieldCustomerName, MsgCustomerNameTooLong)
	}

	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		errs.Add(FieldCustomerEmail, MsgCustomerEmailRequired)
	case utf8.RuneCountInString(email) > MaxEmailLength:
		errs.Add(FieldCustomerEmail, MsgCustomerEmailTooLong)
	case !isEmail(email):
		errs.Add(FieldCustomerEmail, MsgCustomerEmailInvalid)
	}

	phone := strings.TrimSpace(c.Phone)
	switch {
	case phone == "":
		errs.Add(FieldCustomerPhone, MsgCustomerPhoneRequired)
	case utf8.RuneCountInString(phone) > MaxPhoneLength:
		errs.Add(FieldCustomerPhone, MsgCustomerPhoneTooLong)
	}

	if c.NumberOfPeople < MinNumberOfPeople {
		errs.Add(FieldNumberOfPeople, MsgNumberOfPeopleMin)
	}
}

// isEmail принимает только голый адрес вида user@host, без отображаемого имени
func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	return at > 0 && at < len(value)-1
}
