package domain

import "regexp"

// Driver represents a person who may be operating a load.
// Status is self-reported and open-ended: dispatchers type what they see,
// so unknown values must survive the round trip unmodified.
type Driver struct {
	ID     int64
	OrgID  int64
	Name   string
	Phone  string
	Status DriverStatus
}

// PartialDriverUpdate carries optional fields to update a driver.
// A nil field means “do not change” that attribute.
type PartialDriverUpdate struct {
	ID     int64
	Name   *string
	Phone  *string
	Status *DriverStatus
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{10,14}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
