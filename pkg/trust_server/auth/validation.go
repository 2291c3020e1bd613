package auth

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
)

func ValidateVerifyChallengeRequest(req VerifyChallengeRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.DID, validation.Required),
		validation.Field(&req.Nonce, validation.Required),
		validation.Field(&req.Timestamp, validation.Required, validation.Min(1)),
		validation.Field(&req.Signature, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
