package middleware

import (
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Test struct with validation tags
type TestRequest struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gt=0"`
	Image string  `validate:"required"`
}

func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeName bool, positivePrice bool, includeImage bool) bool {
			req := TestRequest{}

			if includeName {
				req.Name = "Gold Gem Bracelet"
			}
			if positivePrice {
				req.Price = 6
			}
			if includeImage {
				req.Image = "img/gold.png"
			}

			allValid := includeName && positivePrice && includeImage

			err := ValidateRequest(req)
			if allValid {
				return err == nil
			}
			return err != nil
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Test that validation errors are properly formatted
func TestProperty_ValidationErrorsAreFormatted(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("validation errors include field information", prop.ForAll(
		func() bool {
			err := ValidateRequest(TestRequest{Price: -1})
			if err == nil {
				return false
			}

			validationErrors := FormatValidationErrors(err)
			if len(validationErrors) == 0 {
				return false
			}

			for _, ve := range validationErrors {
				if ve.Field == "" || ve.Message == "" {
					return false
				}
			}

			return true
		},
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_PriceMustBePositive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("non-positive prices fail the gt=0 tag", prop.ForAll(
		func(price float64) bool {
			err := ValidateRequest(TestRequest{
				Name:  "Opal Ring",
				Price: price,
				Image: "img/opal.png",
			})

			if price > 0 {
				return err == nil
			}
			return err != nil
		},
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFormNumber_ParsesFormValues(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"9.5", 9.5},
		{"6", 6},
		{"", 0},
		{"abc", 0},
		{"-2", -2},
	}

	for _, tc := range cases {
		form := url.Values{"price": {tc.raw}}
		req := httptest.NewRequest("POST", "/test", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		got := FormNumber(req, "price")
		if got != tc.want {
			t.Errorf("FormNumber(%q) = %s, want %s",
				tc.raw,
				strconv.FormatFloat(got, 'f', -1, 64),
				strconv.FormatFloat(tc.want, 'f', -1, 64))
		}
	}
}