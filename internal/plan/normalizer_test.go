package plan_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/travel-budget/internal/plan"
)

func TestPlan(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Plan Suite")
}

var _ = Describe("NormalizeAIResponse", func() {
	Context("with a flat JSON document", func() {
		It("extracts every section", func() {
			raw := `{
				"itinerary": [{"day": 1, "title": "Arrival"}],
				"hotelOptions": [{"name": "Hotel Pera", "pricePerNight": 120}],
				"visaInfo": {"required": false},
				"culturalDifferences": ["Remove shoes indoors"],
				"localTips": ["Carry cash for markets"]
			}`

			n := plan.NormalizeAIResponse(raw)

			Expect(n.RawResponse).To(BeEmpty())
			Expect(n.Itinerary).To(HaveLen(1))
			Expect(n.HotelOptions).To(HaveLen(1))
			Expect(n.VisaInfo).To(HaveKeyWithValue("required", false))
			Expect(n.CulturalDifferences).To(ContainElement("Remove shoes indoors"))
			Expect(n.LocalTips).To(ContainElement("Carry cash for markets"))
		})

		It("accepts snake_case section names", func() {
			raw := `{"hotel_options": [{"name": "Hostel"}], "local_tips": ["tip"]}`

			n := plan.NormalizeAIResponse(raw)

			Expect(n.HotelOptions).To(HaveLen(1))
			Expect(n.LocalTips).To(HaveLen(1))
		})
	})

	Context("with the legacy double-encoded shape", func() {
		It("unwraps the outer string and parses the document", func() {
			raw := `"{\"itinerary\": [{\"day\": 1}], \"visaInfo\": {\"required\": true}}"`

			n := plan.NormalizeAIResponse(raw)

			Expect(n.RawResponse).To(BeEmpty())
			Expect(n.Itinerary).To(HaveLen(1))
			Expect(n.VisaInfo).To(HaveKeyWithValue("required", true))
		})
	})

	Context("with string-encoded sections", func() {
		It("parses sections that carry nested JSON", func() {
			raw := `{"hotelOptions": "[{\"name\": \"Hotel Pera\"}]"}`

			n := plan.NormalizeAIResponse(raw)

			Expect(n.HotelOptions).To(HaveLen(1))
		})

		It("keeps a section's string form when it is not valid JSON", func() {
			raw := `{"itinerary": [{"day": 1}], "visaInfo": "Visa on arrival for most nationalities"}`

			n := plan.NormalizeAIResponse(raw)

			Expect(n.Itinerary).To(HaveLen(1))
			Expect(n.VisaInfo).To(Equal("Visa on arrival for most nationalities"))
			Expect(n.RawResponse).To(BeEmpty())
		})
	})

	Context("with an unparseable payload", func() {
		It("keeps the whole response as raw text", func() {
			raw := "Day 1: arrive in Istanbul. Day 2: Hagia Sophia."

			n := plan.NormalizeAIResponse(raw)

			Expect(n.HasStructuredContent()).To(BeFalse())
			Expect(n.RawResponse).To(Equal(raw))
		})

		It("keeps raw text when the document has no known sections", func() {
			raw := `{"summary": "a trip"}`

			n := plan.NormalizeAIResponse(raw)

			Expect(n.HasStructuredContent()).To(BeFalse())
			Expect(n.RawResponse).To(Equal(raw))
		})
	})
})
