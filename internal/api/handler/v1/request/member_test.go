package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMemberRequest_Validate(t *testing.T) {
	valid := func() RegisterMemberRequest {
		return RegisterMemberRequest{
			FullName:  "María García",
			DocType:   "NIE",
			DocNumber: "X1234567Z",
		}
	}

	t.Run("valid documents", func(t *testing.T) {
		tests := []struct {
			docType   string
			docNumber string
		}{
			{"DNI", "12345678A"},
			{"NIE", "X1234567Z"},
			{"NIE", "Z7654321B"},
			{"PASAPORTE", "AB123456"},
		}

		for _, tt := range tests {
			req := valid()
			req.DocType = tt.docType
			req.DocNumber = tt.docNumber

			assert.NoErrorf(t, req.Validate(), "%v %v", tt.docType, tt.docNumber)
		}
	})

	t.Run("document number is normalized to upper case", func(t *testing.T) {
		req := valid()
		req.DocNumber = " x1234567z "

		require.NoError(t, req.Validate())
		assert.Equal(t, "X1234567Z", req.DocNumber)
	})

	t.Run("invalid documents", func(t *testing.T) {
		tests := []struct {
			docType   string
			docNumber string
		}{
			{"DNI", "1234567A"},    // too short
			{"DNI", "123456789"},   // no letter
			{"NIE", "A1234567Z"},   // bad prefix
			{"PASAPORTE", "AB1"},   // too short
			{"CARNET", "12345678A"}, // unknown type
		}

		for _, tt := range tests {
			req := valid()
			req.DocType = tt.docType
			req.DocNumber = tt.docNumber

			assert.Errorf(t, req.Validate(), "%v %v", tt.docType, tt.docNumber)
		}
	})

	t.Run("name and urls", func(t *testing.T) {
		req := valid()
		req.FullName = ""
		assert.Error(t, req.Validate())

		req = valid()
		req.PhotoURL = "not a url"
		assert.Error(t, req.Validate())
	})
}

func TestDepositRequest_Validate(t *testing.T) {
	assert.Error(t, (&DepositRequest{}).Validate())
	assert.NoError(t, (&DepositRequest{Amount: "25.50"}).Validate())
	// Whether the string is a number is the engine's call, not the
	// request layer's.
	assert.NoError(t, (&DepositRequest{Amount: "abc"}).Validate())
}
