package validators_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-reservations/models"
	"github.com/yeremiapane/restaurant-reservations/validators"
)

// now is a fixed Monday at noon so the date checks are deterministic.
var now = time.Date(2030, time.January, 7, 12, 0, 0, 0, time.UTC)

func validPayload() models.ReservationPayload {
	return models.ReservationPayload{
		FirstName:       "Rick",
		LastName:        "Sanchez",
		MobileNumber:    "202-555-0164",
		People:          4,
		ReservationDate: "2030-01-09", // Wednesday
		ReservationTime: "17:30",
	}
}

func TestValidateFields(t *testing.T) {
	err := validators.ValidateFields(map[string]interface{}{
		"first_name": "Rick",
		"halloumi":   true,
		"aardvark":   1,
	})
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Invalid field(s): aardvark, halloumi", err.Message)

	assert.Nil(t, validators.ValidateFields(map[string]interface{}{
		"first_name":     "Rick",
		"status":         "booked",
		"created_at":     "2030-01-01T00:00:00Z",
		"updated_at":     "2030-01-01T00:00:00Z",
		"reservation_id": 1,
	}))
}

func TestValidateRequired(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*models.ReservationPayload)
	}{
		{"first_name", func(p *models.ReservationPayload) { p.FirstName = "" }},
		{"last_name", func(p *models.ReservationPayload) { p.LastName = "" }},
		{"mobile_number", func(p *models.ReservationPayload) { p.MobileNumber = "" }},
		{"reservation_date", func(p *models.ReservationPayload) { p.ReservationDate = "" }},
		{"reservation_time", func(p *models.ReservationPayload) { p.ReservationTime = "" }},
		{"people", func(p *models.ReservationPayload) { p.People = 0 }},
	}

	for _, tc := range cases {
		p := validPayload()
		tc.mutate(&p)
		err := validators.ValidateRequired(p)
		assert.NotNil(t, err, tc.field)
		assert.Equal(t, "Must include a "+tc.field, err.Message)
	}

	assert.Nil(t, validators.ValidateRequired(validPayload()))
}

func TestValidateDateFormat(t *testing.T) {
	err := validators.ValidateDate("not-a-date", "17:30", now)
	assert.NotNil(t, err)
	assert.Contains(t, err.Message, "YYYY-MM-DD")
}

func TestValidateDatePast(t *testing.T) {
	err := validators.ValidateDate("2020-01-01", "17:30", now)
	assert.NotNil(t, err)
	assert.Contains(t, err.Message, "cannot be in the past")

	// Same day, earlier time is also in the past.
	err = validators.ValidateDate("2030-01-07", "11:00", now)
	assert.NotNil(t, err)
	assert.Contains(t, err.Message, "cannot be in the past")
}

func TestValidateDateTuesday(t *testing.T) {
	// 2030-01-08 is a Tuesday.
	err := validators.ValidateDate("2030-01-08", "17:30", now)
	assert.NotNil(t, err)
	assert.Contains(t, err.Message, "closed on Tuesdays")
}

func TestValidateDateOK(t *testing.T) {
	assert.Nil(t, validators.ValidateDate("2030-01-09", "17:30", now))
}

func TestValidateTimeBounds(t *testing.T) {
	assert.NotNil(t, validators.ValidateTime("10:29"))
	assert.Nil(t, validators.ValidateTime("10:30"))
	assert.Nil(t, validators.ValidateTime("21:29"))
	assert.NotNil(t, validators.ValidateTime("21:30"))
	assert.NotNil(t, validators.ValidateTime("23:00"))

	err := validators.ValidateTime("10:29")
	assert.Contains(t, err.Message, "does not open until 10:30")
	err = validators.ValidateTime("21:30")
	assert.Contains(t, err.Message, "at least one hour before close")
}

func TestValidateTimeFormat(t *testing.T) {
	err := validators.ValidateTime("half past six")
	assert.NotNil(t, err)
	assert.Contains(t, err.Message, "HH:MM")
}

func TestValidatePeople(t *testing.T) {
	assert.NotNil(t, validators.ValidatePeople(0))
	assert.NotNil(t, validators.ValidatePeople(-2))
	assert.NotNil(t, validators.ValidatePeople(2.5))
	assert.Nil(t, validators.ValidatePeople(1))
	assert.Nil(t, validators.ValidatePeople(12))

	assert.Equal(t, "Invalid number of people", validators.ValidatePeople(2.5).Message)
}

func TestValidateCreateStatus(t *testing.T) {
	assert.NotNil(t, validators.ValidateCreateStatus(models.StatusSeated))
	assert.NotNil(t, validators.ValidateCreateStatus(models.StatusFinished))
	assert.Nil(t, validators.ValidateCreateStatus(""))
	assert.Nil(t, validators.ValidateCreateStatus(models.StatusBooked))

	assert.Equal(t, "status is seated", validators.ValidateCreateStatus(models.StatusSeated).Message)
}

func TestValidatePayloadShortCircuits(t *testing.T) {
	// A payload with several violations reports the first check in the
	// pipeline: the unknown field.
	p := validPayload()
	p.ReservationDate = "2030-01-08" // Tuesday
	p.People = 0
	fields := map[string]interface{}{"flavor": "mint"}

	err := validators.ValidatePayload(fields, p, now)
	assert.NotNil(t, err)
	assert.Equal(t, "Invalid field(s): flavor", err.Message)
}

func TestValidatePayloadPeopleZeroHitsRequiredFirst(t *testing.T) {
	p := validPayload()
	p.People = 0

	err := validators.ValidatePayload(map[string]interface{}{}, p, now)
	assert.NotNil(t, err)
	assert.Equal(t, "Must include a people", err.Message)
}

func TestValidatePayloadOK(t *testing.T) {
	assert.Nil(t, validators.ValidatePayload(map[string]interface{}{}, validPayload(), now))
}
