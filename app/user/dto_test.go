package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/holidays/internal/validator"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       SignupRequest
		valid     bool
		errFields []string
	}{
		{name: "valid", req: SignupRequest{Username: "alice", Password: "password123"}, valid: true},
		{name: "short username", req: SignupRequest{Username: "al", Password: "password123"}, errFields: []string{"username"}},
		{name: "long username", req: SignupRequest{Username: strings.Repeat("a", 51), Password: "password123"}, errFields: []string{"username"}},
		{name: "username with spaces", req: SignupRequest{Username: "alice smith", Password: "password123"}, errFields: []string{"username"}},
		{name: "short password", req: SignupRequest{Username: "alice", Password: "short"}, errFields: []string{"password"}},
		{name: "longest password", req: SignupRequest{Username: "alice", Password: strings.Repeat("a", 72)}, valid: true},
		{name: "long password", req: SignupRequest{Username: "alice", Password: strings.Repeat("a", 73)}, errFields: []string{"password"}},
		{name: "multibyte password over 72 bytes", req: SignupRequest{Username: "alice", Password: strings.Repeat("€", 25)}, errFields: []string{"password"}},
		{name: "both invalid", req: SignupRequest{Username: " ", Password: ""}, errFields: []string{"username", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			assert.Equal(t, tt.valid, tt.req.Validate(v))
			for _, field := range tt.errFields {
				assert.Contains(t, v.Errors, field)
			}
			assert.Len(t, v.Errors, len(tt.errFields))
		})
	}
}
