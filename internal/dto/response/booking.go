package response

import "tourism-booking/internal/data/entity"

// SubmitResponse is what a successful submission reports back.
type SubmitResponse struct {
	Message string
	Data    []entity.Record
}
