package audit

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
)

func ValidateAppendRequest(req AppendRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Source, validation.Required),
		validation.Field(&req.Action, validation.Required),
		validation.Field(&req.Actor, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateListAuditEventsRequest(req storage.ListAuditEventsRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
