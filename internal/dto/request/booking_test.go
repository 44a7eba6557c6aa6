package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Count
	}{
		{name: "number", raw: `5`, want: Count{Value: 5, Set: true}},
		{name: "string", raw: `"3"`, want: Count{Value: 3, Set: true}},
		{name: "padded string", raw: `" 2 "`, want: Count{Value: 2, Set: true}},
		{name: "null", raw: `null`, want: Count{}},
		{name: "empty string", raw: `""`, want: Count{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Count
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &c))
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestCount_Rejects(t *testing.T) {
	for _, raw := range []string{`"two"`, `2.5`, `true`, `[1]`} {
		var c Count
		assert.Error(t, json.Unmarshal([]byte(raw), &c), raw)
	}
}

func TestActivityBookingRequest_Decode(t *testing.T) {
	var req ActivityBookingRequest
	err := json.Unmarshal([]byte(`{"name":"Ann","phone":"1","activity":"Trek","date":"2024-07-01","participants":"4","requirements":"veg"}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "Ann", *req.Name)
	assert.Equal(t, Count{Value: 4, Set: true}, req.Participants)
	assert.Equal(t, "veg", *req.Requirements)
	assert.Nil(t, req.Email)
}

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Text
	}{
		{name: "string", raw: `"Ann"`, want: Text{Value: "Ann", Set: true}},
		{name: "empty string", raw: `""`, want: Text{Value: "", Set: true}},
		{name: "number", raw: `9876543210`, want: Text{Value: "9876543210", Set: true}},
		{name: "bool", raw: `true`, want: Text{Value: "true", Set: true}},
		{name: "null", raw: `null`, want: Text{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var txt Text
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &txt))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &txt))
}

func TestText_Ptr(t *testing.T) {
	assert.Nil(t, Text{}.Ptr())

	p := Text{Value: "x", Set: true}.Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)
}
