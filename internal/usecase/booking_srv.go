package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	msgNoData        = "No JSON data received"
	msgNoPaymentData = "No payment data received"
)

type BookingService interface {
	// Submit maps a booking form onto its category record and stores it.
	Submit(ctx context.Context, category entity.Category, payload []byte) (*response.SubmitResponse, error)
	// SubmitPayment stores the payload verbatim in the user bookings collection.
	SubmitPayment(ctx context.Context, payload []byte) (*response.SubmitResponse, error)
	// SubmitGeneric stores the payload verbatim in the collection its
	// booking_type names, falling back to user bookings.
	SubmitGeneric(ctx context.Context, payload []byte) (*response.SubmitResponse, error)

	List(ctx context.Context, category string) ([]entity.Record, error)
	ListAll(ctx context.Context) (*entity.GroupedBookings, error)
}

type bookingService struct {
	store repository.BookingStore
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		store: repo.Booking,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Submit(ctx context.Context, category entity.Category, payload []byte) (*response.SubmitResponse, error) {
	fields, err := decodeObject(payload, msgNoData)
	if err != nil {
		s.log.Warn("Rejected booking payload",
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, err
	}

	s.log.Info("Booking submission received",
		zap.String("category", string(category)),
		zap.Int("fields", len(fields)))

	// Only activity bookings check individual fields; an empty object is
	// reported as missing fields rather than missing data.
	if len(fields) == 0 && category != entity.CategoryActivity {
		return nil, &ValidationError{Message: msgNoData}
	}

	record, err := mapBooking(category, payload)
	if err != nil {
		s.log.Warn("Booking validation failed",
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, err
	}

	return s.insert(ctx, category.Collection(),
		record,
		category.Title()+" booking successful",
		"Failed to create "+string(category)+" booking",
	)
}

func (s *bookingService) SubmitPayment(ctx context.Context, payload []byte) (*response.SubmitResponse, error) {
	record, err := decodeRecord(payload, msgNoPaymentData)
	if err != nil {
		s.log.Warn("Rejected payment payload", zap.Error(err))
		return nil, err
	}

	s.log.Info("Payment submission received", zap.Int("fields", len(record)))

	return s.insert(ctx, entity.CollectionUserBookings,
		record,
		"Payment processed and booking saved",
		"Failed to save booking",
	)
}

func (s *bookingService) SubmitGeneric(ctx context.Context, payload []byte) (*response.SubmitResponse, error) {
	record, err := decodeRecord(payload, msgNoData)
	if err != nil {
		s.log.Warn("Rejected booking payload", zap.Error(err))
		return nil, err
	}

	collection := entity.CollectionUserBookings
	if bookingType, ok := record["booking_type"].(string); ok {
		if category, ok := entity.ParseCategory(bookingType); ok {
			collection = category.Collection()
		}
	}

	s.log.Info("Generic booking received", zap.String("collection", collection))

	return s.insert(ctx, collection,
		record,
		"Booking created successfully",
		"Failed to insert booking",
	)
}

func (s *bookingService) List(ctx context.Context, category string) ([]entity.Record, error) {
	c, ok := entity.ParseCategory(category)
	if !ok {
		return nil, &NotFoundError{Message: fmt.Sprintf("unknown booking category %q", category)}
	}

	records, err := s.store.SelectAll(ctx, c.Collection())
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("category", category))
		return nil, storeFailure(err)
	}

	s.log.Info("Bookings listed",
		zap.String("category", category),
		zap.Int("count", len(records)))

	return orEmpty(records), nil
}

func (s *bookingService) ListAll(ctx context.Context) (*entity.GroupedBookings, error) {
	results := make([][]entity.Record, len(entity.Categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range entity.Categories {
		i, category := i, category
		g.Go(func() error {
			records, err := s.store.SelectAll(gctx, category.Collection())
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to list all bookings", zap.Error(err))
		return nil, storeFailure(err)
	}

	grouped := &entity.GroupedBookings{
		Guide:     orEmpty(results[0]),
		Transport: orEmpty(results[1]),
		Activity:  orEmpty(results[2]),
	}

	s.log.Info("All bookings listed",
		zap.Int("total", len(grouped.Guide)+len(grouped.Transport)+len(grouped.Activity)))

	return grouped, nil
}

// insert makes exactly one store attempt. An empty result counts as failure.
func (s *bookingService) insert(ctx context.Context, collection string, record entity.Record, okMsg, emptyMsg string) (*response.SubmitResponse, error) {
	records, err := s.store.Insert(ctx, collection, record)
	if err != nil {
		s.log.Error("Failed to store booking",
			zap.Error(err),
			zap.String("collection", collection))
		return nil, storeFailure(err)
	}

	if len(records) == 0 {
		s.log.Error("Store returned no records",
			zap.String("collection", collection))
		return nil, &StoreError{Message: emptyMsg}
	}

	s.log.Info("Booking stored",
		zap.String("collection", collection),
		zap.Int("records", len(records)))

	return &response.SubmitResponse{Message: okMsg, Data: records}, nil
}

func mapBooking(category entity.Category, payload []byte) (entity.Record, error) {
	switch category {
	case entity.CategoryGuide:
		var req request.GuideBookingRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, invalidBody(err)
		}
		return MapGuide(&req).Record(), nil

	case entity.CategoryTransport:
		var req request.TransportBookingRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, invalidBody(err)
		}
		return MapTransport(&req).Record(), nil

	case entity.CategoryActivity:
		var req request.ActivityBookingRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, invalidBody(err)
		}
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			missing := utils.MissingFields(errs, request.ActivityRequiredFields)
			return nil, &ValidationError{
				Message: "Missing required fields: " + strings.Join(missing, ", "),
				Fields:  missing,
			}
		}
		return MapActivity(&req).Record(), nil

	default:
		return nil, &NotFoundError{Message: fmt.Sprintf("unknown booking category %q", category)}
	}
}

func MapGuide(req *request.GuideBookingRequest) entity.GuideBooking {
	return entity.GuideBooking{
		FullName:          req.Name.Ptr(),
		Phone:             req.Phone.Ptr(),
		Email:             req.Email.Ptr(),
		PreferredLanguage: req.Language.Ptr(),
		PlacesOfInterest:  req.Places,
		Date:              req.Date.Ptr(),
	}
}

func MapTransport(req *request.TransportBookingRequest) entity.TransportBooking {
	return entity.TransportBooking{
		FullName:       req.Name.Ptr(),
		PickupLocation: req.PickupLocation.Ptr(),
		Destination:    req.Destination.Ptr(),
		VehicleType:    req.VehicleType.Ptr(),
		Datetime:       req.Datetime.Ptr(),
	}
}

// MapActivity expects a request that already passed validation.
func MapActivity(req *request.ActivityBookingRequest) entity.ActivityBooking {
	participants := entity.DefaultParticipants
	if req.Participants.Set {
		participants = req.Participants.Value
	}

	return entity.ActivityBooking{
		FullName:            *req.Name,
		Phone:               *req.Phone,
		Email:               req.Email,
		Activity:            *req.Activity,
		Location:            req.Location,
		Participants:        participants,
		Date:                *req.Date,
		SpecialRequirements: req.Requirements,
	}
}

// decodeObject checks that payload is a JSON object and returns its keys.
func decodeObject(payload []byte, emptyMsg string) (map[string]json.RawMessage, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil, &ValidationError{Message: emptyMsg}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, invalidBody(err)
	}
	return fields, nil
}

// decodeRecord decodes a non-empty JSON object to be stored as sent.
func decodeRecord(payload []byte, emptyMsg string) (entity.Record, error) {
	if _, err := decodeObject(payload, emptyMsg); err != nil {
		return nil, err
	}

	var record entity.Record
	if err := json.Unmarshal(bytes.TrimSpace(payload), &record); err != nil {
		return nil, invalidBody(err)
	}
	if len(record) == 0 {
		return nil, &ValidationError{Message: emptyMsg}
	}
	return record, nil
}

// invalidBody describes a decode failure without Go type names.
func invalidBody(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	reason := err.Error()
	switch {
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			reason = "expected a JSON object"
		} else {
			reason = fmt.Sprintf("field %s has the wrong type", typeErr.Field)
		}
	case errors.As(err, &syntaxErr):
		reason = fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	}
	return &ValidationError{Message: "Invalid request body: " + reason}
}

func orEmpty(records []entity.Record) []entity.Record {
	if records == nil {
		return []entity.Record{}
	}
	return records
}
