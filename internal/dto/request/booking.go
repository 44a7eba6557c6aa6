package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// GuideBookingRequest is the guide form. Every field is optional.
type GuideBookingRequest struct {
	Name     Text     `json:"name"`
	Phone    Text     `json:"phone"`
	Email    Text     `json:"email"`
	Language Text     `json:"language"`
	Places   []string `json:"places"`
	Date     Text     `json:"date"`
}

// TransportBookingRequest is the transport form. Every field is optional.
type TransportBookingRequest struct {
	Name           Text `json:"name"`
	PickupLocation Text `json:"pickup_location"`
	Destination    Text `json:"destination"`
	VehicleType    Text `json:"vehicle_type"`
	Datetime       Text `json:"datetime"`
}

// ActivityRequiredFields is the order missing activity fields are reported in.
var ActivityRequiredFields = []string{"name", "phone", "activity", "date"}

// ActivityBookingRequest is the activity form; name, phone, activity and
// date must be present and non-empty.
type ActivityBookingRequest struct {
	Name         *string `json:"name" validate:"required,min=1"`
	Phone        *string `json:"phone" validate:"required,min=1"`
	Email        *string `json:"email"`
	Activity     *string `json:"activity" validate:"required,min=1"`
	Location     *string `json:"location"`
	Participants Count   `json:"participants"`
	Date         *string `json:"date" validate:"required,min=1"`
	Requirements *string `json:"requirements"`
}

var (
	errNotText  = errors.New("expected a text value")
	errNotCount = errors.New("participants must be a whole number")
)

// Text is an optional form value. Numbers and booleans are kept as their
// JSON text, so a phone sent as 9876543210 is stored as "9876543210".
type Text struct {
	Value string
	Set   bool
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t.Value = s
	case '{', '[':
		return errNotText
	default:
		// numbers, true and false
		t.Value = string(data)
	}
	t.Set = true
	return nil
}

// Ptr returns nil when the client did not send the field.
func (t Text) Ptr() *string {
	if !t.Set {
		return nil
	}
	v := t.Value
	return &v
}

// Count is a head count that accepts 3 as well as "3", since HTML forms
// post numbers as strings. Null and "" leave it unset.
type Count struct {
	Value int
	Set   bool
}

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var n json.Number
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			return nil
		}
		n = json.Number(s)
	} else if err := json.Unmarshal(data, &n); err != nil {
		return errNotCount
	}

	v, err := strconv.Atoi(n.String())
	if err != nil {
		return errNotCount
	}
	c.Value, c.Set = v, true
	return nil
}
