package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupStaffRequest_Validate(t *testing.T) {
	valid := func() SignupStaffRequest {
		return SignupStaffRequest{
			Name:     "Duke Jefe",
			Email:    "duke@clubverd.es",
			Password: "changeme1234",
			Role:     "ADMIN",
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("password policy", func(t *testing.T) {
		for _, password := range []string{"short1", "onlyletters", "12345678", "nodigitshere"} {
			req := valid()
			req.Password = password
			assert.Errorf(t, req.Validate(), "password %q", password)
		}

		req := valid()
		req.Password = "letters4nd1234"
		assert.NoError(t, req.Validate())
	})

	t.Run("role must be known", func(t *testing.T) {
		req := valid()
		req.Role = "MANAGER"
		assert.ErrorIs(t, req.Validate(), errInvalidRole)
	})

	t.Run("email format", func(t *testing.T) {
		req := valid()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})
}

func TestUpdateStaffRequest_Validate(t *testing.T) {
	valid := func() UpdateStaffRequest {
		return UpdateStaffRequest{
			Name:  "Pali Stock",
			Email: "pali@clubverd.es",
			Role:  "INVENTORY",
		}
	}

	t.Run("empty password means keep the current one", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("a supplied password must meet the policy", func(t *testing.T) {
		req := valid()
		req.Password = "weak"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)

		req.Password = "strongenough1"
		assert.NoError(t, req.Validate())
	})
}
