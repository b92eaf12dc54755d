package validators

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-reservations/models"
	"github.com/yeremiapane/restaurant-reservations/utils"
)

var (
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormat = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// validFields are the keys a create/update payload may carry. Timestamps and
// the id are accepted because reads are often echoed back on update, but they
// are never required.
var validFields = map[string]struct{}{
	"first_name":       {},
	"last_name":        {},
	"mobile_number":    {},
	"reservation_date": {},
	"reservation_time": {},
	"people":           {},
	"status":           {},
	"created_at":       {},
	"updated_at":       {},
	"reservation_id":   {},
}

// Opening hours: first seating 10:30, last seating strictly before 21:30
// (one hour before the 22:30 close).
const (
	openingMinute     = 10*60 + 30
	lastSeatingMinute = 21*60 + 30
)

// ValidatePayload runs the create/update checks as a strict ordered pipeline;
// the first failing check returns immediately.
func ValidatePayload(fields map[string]interface{}, p models.ReservationPayload, now time.Time) *utils.APIError {
	if err := ValidateFields(fields); err != nil {
		return err
	}
	if err := ValidateRequired(p); err != nil {
		return err
	}
	if err := ValidateDate(p.ReservationDate, p.ReservationTime, now); err != nil {
		return err
	}
	if err := ValidateTime(p.ReservationTime); err != nil {
		return err
	}
	if err := ValidatePeople(p.People); err != nil {
		return err
	}
	return ValidateCreateStatus(p.Status)
}

// ValidateFields rejects any key outside the known field set, naming every
// offending key.
func ValidateFields(fields map[string]interface{}) *utils.APIError {
	var invalid []string
	for field := range fields {
		if _, ok := validFields[field]; !ok {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return utils.NewValidationError("Invalid field(s): %s", strings.Join(invalid, ", "))
	}
	return nil
}

// ValidateRequired checks each required field is present and non-empty. A
// people count of zero fails here, before the numeric check, so the message
// precedence matches the original pipeline.
func ValidateRequired(p models.ReservationPayload) *utils.APIError {
	required := []struct {
		name  string
		empty bool
	}{
		{"first_name", p.FirstName == ""},
		{"last_name", p.LastName == ""},
		{"mobile_number", p.MobileNumber == ""},
		{"reservation_date", p.ReservationDate == ""},
		{"reservation_time", p.ReservationTime == ""},
		{"people", p.People == 0},
	}
	for _, field := range required {
		if field.empty {
			return utils.NewValidationError("Must include a %s", field.name)
		}
	}
	return nil
}

// ValidateDate checks the date format, that the combined date and time is not
// in the past, and that the day is not Tuesday (the restaurant's closed day).
func ValidateDate(date, tm string, now time.Time) *utils.APIError {
	if !dateFormat.MatchString(date) {
		return utils.NewValidationError("the reservation_date must be a valid date in the format 'YYYY-MM-DD'")
	}
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return utils.NewValidationError("the reservation_date must be a valid date in the format 'YYYY-MM-DD'")
	}
	if at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+tm, now.Location()); err == nil && at.Before(now) {
		return utils.NewValidationError("The date and time cannot be in the past. Please select a future date.")
	}
	if day.Weekday() == time.Tuesday {
		return utils.NewValidationError("The restaurant is closed on Tuesdays. Please select a different day.")
	}
	return nil
}

// ValidateTime checks the time format and the operating-hours window:
// 10:30 inclusive through 21:30 exclusive.
func ValidateTime(tm string) *utils.APIError {
	if !timeFormat.MatchString(tm) {
		return utils.NewValidationError("the reservation_time must be a valid time in the format 'HH:MM'")
	}
	at, err := time.Parse("15:04", tm)
	if err != nil {
		return utils.NewValidationError("the reservation_time must be a valid time in the format 'HH:MM'")
	}
	minute := at.Hour()*60 + at.Minute()
	if minute < openingMinute {
		return utils.NewValidationError("The restaurant does not open until 10:30 a.m.")
	}
	if minute >= lastSeatingMinute {
		return utils.NewValidationError("The restaurant closes at 22:30 (10:30 pm). Please schedule your reservation at least one hour before close.")
	}
	return nil
}

// ValidatePeople requires a positive whole number of guests.
func ValidatePeople(people float64) *utils.APIError {
	if people <= 0 || people != math.Trunc(people) {
		return utils.NewValidationError("Invalid number of people")
	}
	return nil
}

// ValidateCreateStatus blocks seating or finishing a reservation through the
// generic create/update path; those transitions belong to the status endpoint.
func ValidateCreateStatus(status string) *utils.APIError {
	if status == models.StatusSeated || status == models.StatusFinished {
		return utils.NewValidationError("status is %s", status)
	}
	return nil
}
