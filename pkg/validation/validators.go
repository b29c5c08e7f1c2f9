package validation

import (
	"github.com/daryllundy/resume-builder-sub000/internal/domain"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("job_status", JobStatusValue)
}

// JobStatusValue accepts only the seven pipeline statuses. Empty is allowed
// so that omitted statuses can fall back to "saved"; pair with required when
// the field is mandatory.
func JobStatusValue(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.JobStatus(val).Valid()
}
