package cert_authority

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
)

func ValidateIssueCertificateRequest(req IssueCertificateRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.SubjectDID, validation.Required),
		validation.Field(&req.PublicKey, validation.Required),
		validation.Field(&req.KeyUsages, validation.Required),
		validation.Field(&req.TrustLevel, validation.Min(int(model.TrustLevelBasic)), validation.Max(int(model.TrustLevelEnterprise))),
		validation.Field(&req.ValidityDays, validation.Required, validation.Min(1)),
		validation.Field(&req.Challenge, validation.Required),
		validation.Field(&req.ProofOfPossession, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateRevokeCertificateRequest(req RevokeCertificateRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.CertID, validation.Required),
		validation.Field(&req.Reason, validation.Required),
		validation.Field(&req.RevokerDID, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateListCertificatesRequest(req storage.ListCertificatesRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Required, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
