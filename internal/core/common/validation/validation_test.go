package validation

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/travel-budget/internal"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

var _ = Describe("ValidationBuilder", func() {
	fieldsOf := func(err *internal.AppError) []string {
		details, ok := err.Details.(internal.ValidationErrors)
		Expect(ok).To(BeTrue())
		names := make([]string, len(details.Errors))
		for i, e := range details.Errors {
			names[i] = e.Field
		}
		return names
	}

	It("should pass when every rule holds", func() {
		v := NewValidator()
		v.Field("email", "traveler@example.com").Required().Email()
		v.Field("amount", 42.5).Required().Positive()
		v.Field("currency", "TRY").CurrencyCode()

		Expect(v.Validate()).To(BeNil())
	})

	It("should collect one entry per failing field", func() {
		v := NewValidator()
		v.Field("email", "not-an-email").Email()
		v.Field("name", "").Required()
		v.Field("amount", -3.0).Positive()

		err := v.Validate()
		Expect(err).NotTo(BeNil())
		Expect(err.Code).To(Equal(internal.ErrCodeValidationFailed))
		Expect(fieldsOf(err)).To(ConsistOf("email", "name", "amount"))
	})

	Describe("Required", func() {
		It("should reject blank strings", func() {
			v := NewValidator()
			v.Field("destination", "   ").Required()
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should reject nil string pointers", func() {
			v := NewValidator()
			var s *string
			v.Field("description", s).Required()
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should reject zero timestamps", func() {
			v := NewValidator()
			v.Field("expense_date", time.Time{}).Required()
			Expect(v.Validate()).NotTo(BeNil())
		})
	})

	Describe("CurrencyCode", func() {
		It("should allow empty values for optional fields", func() {
			v := NewValidator()
			v.Field("currency", "").CurrencyCode()
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject codes that are not 3 letters", func() {
			v := NewValidator()
			v.Field("currency", "EURO").CurrencyCode()

			err := v.Validate()
			Expect(err).NotTo(BeNil())
			details := err.Details.(internal.ValidationErrors)
			Expect(details.Errors[0].Code).To(Equal(string(internal.ErrCodeInvalidCurrency)))
		})
	})

	Describe("NotFuture", func() {
		It("should reject dates after now", func() {
			v := NewValidator()
			v.Field("expense_date", time.Now().Add(48*time.Hour)).NotFuture()
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should accept past dates", func() {
			v := NewValidator()
			v.Field("expense_date", time.Now().AddDate(0, 0, -1)).NotFuture()
			Expect(v.Validate()).To(BeNil())
		})
	})

	Describe("length bounds", func() {
		It("should enforce MinLength and MaxLength", func() {
			v := NewValidator()
			v.Field("password", "short").MinLength(8)
			v.Field("description", string(make([]byte, 501))).MaxLength(500)

			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(fieldsOf(err)).To(ConsistOf("password", "description"))
		})
	})

	Describe("Custom", func() {
		It("should run caller supplied rules", func() {
			v := NewValidator()
			v.Field("travelers", "0").Custom(func(value interface{}) *internal.AppError {
				if value.(string) == "0" {
					return internal.NewValidationFieldError("travelers", "travelers must be at least 1", internal.ErrCodeValidationFailed)
				}
				return nil
			})

			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(fieldsOf(err)).To(ConsistOf("travelers"))
		})
	})
})
