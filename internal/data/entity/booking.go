package entity

// Category identifies a booking form and the collection its records live in.
type Category string

const (
	CategoryGuide     Category = "guide"
	CategoryTransport Category = "transport"
	CategoryActivity  Category = "activity"
)

// Categories lists every booking category in the order the admin panel shows them.
var Categories = []Category{CategoryGuide, CategoryTransport, CategoryActivity}

// CollectionUserBookings receives payments and bookings whose type is unknown.
const CollectionUserBookings = "user_bookings"

// ParseCategory reports whether s names a booking category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Collection returns the storage collection owned by the category.
func (c Category) Collection() string {
	return string(c) + "_bookings"
}

// Title is the capitalised category name used in client messages.
func (c Category) Title() string {
	switch c {
	case CategoryGuide:
		return "Guide"
	case CategoryTransport:
		return "Transport"
	case CategoryActivity:
		return "Activity"
	default:
		return string(c)
	}
}

// GuideBooking is the stored shape of a guide booking.
type GuideBooking struct {
	FullName          *string  `db:"full_name"`
	Phone             *string  `db:"phone"`
	Email             *string  `db:"email"`
	PreferredLanguage *string  `db:"preferred_language"`
	PlacesOfInterest  []string `db:"places_of_interest"`
	Date              *string  `db:"date"`
}

func (b GuideBooking) Record() Record {
	rec := Record{}
	rec.setString("full_name", b.FullName)
	rec.setString("phone", b.Phone)
	rec.setString("email", b.Email)
	rec.setString("preferred_language", b.PreferredLanguage)
	places := b.PlacesOfInterest
	if places == nil {
		places = []string{}
	}
	rec["places_of_interest"] = places
	rec.setString("date", b.Date)
	return rec
}

// TransportBooking is the stored shape of a transport booking.
type TransportBooking struct {
	FullName       *string `db:"full_name"`
	PickupLocation *string `db:"pickup_location"`
	Destination    *string `db:"destination"`
	VehicleType    *string `db:"vehicle_type"`
	Datetime       *string `db:"datetime"`
}

func (b TransportBooking) Record() Record {
	rec := Record{}
	rec.setString("full_name", b.FullName)
	rec.setString("pickup_location", b.PickupLocation)
	rec.setString("destination", b.Destination)
	rec.setString("vehicle_type", b.VehicleType)
	rec.setString("datetime", b.Datetime)
	return rec
}

// DefaultParticipants is stored when an activity booking omits the head count.
const DefaultParticipants = 1

// ActivityBooking is the stored shape of an activity booking.
type ActivityBooking struct {
	FullName            string  `db:"full_name"`
	Phone               string  `db:"phone"`
	Email               *string `db:"email"`
	Activity            string  `db:"activity"`
	Location            *string `db:"location"`
	Participants        int     `db:"participants"`
	Date                string  `db:"date"`
	SpecialRequirements *string `db:"special_requirements"`
}

func (b ActivityBooking) Record() Record {
	rec := Record{
		"full_name":    b.FullName,
		"phone":        b.Phone,
		"activity":     b.Activity,
		"participants": b.Participants,
		"date":         b.Date,
	}
	rec.setString("email", b.Email)
	rec.setString("location", b.Location)
	rec.setString("special_requirements", b.SpecialRequirements)
	return rec
}
