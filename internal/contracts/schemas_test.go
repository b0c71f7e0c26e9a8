package contracts

import "testing"

const validPropertyBody = `{
	"price": 450000,
	"listingType": "BUY",
	"propertyType": "APARTMENT",
	"status": "AVAILABLE",
	"address": "12 Rue des Orangers",
	"city": "Casablanca",
	"surfaceArea": 96.5,
	"bedrooms": 2,
	"bathrooms": 1,
	"images": ["https://cdn.example/a.jpg"],
	"featured": false
}`

func TestValidatePropertyPayloadAcceptsValidBody(t *testing.T) {
	if err := ValidatePropertyPayload([]byte(validPropertyBody)); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}
}

func TestValidatePropertyPayloadRejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `{"price": `},
		{"missing required fields", `{"price": 100}`},
		{"unknown listing type", `{
			"price": 100, "listingType": "LEASE", "propertyType": "VILLA",
			"status": "AVAILABLE", "address": "x", "city": "Rabat", "surfaceArea": 50}`},
		{"negative price", `{
			"price": -1, "listingType": "BUY", "propertyType": "VILLA",
			"status": "AVAILABLE", "address": "x", "city": "Rabat", "surfaceArea": 50}`},
		{"zero surface", `{
			"price": 100, "listingType": "BUY", "propertyType": "VILLA",
			"status": "AVAILABLE", "address": "x", "city": "Rabat", "surfaceArea": 0}`},
		{"unknown extra field", `{
			"price": 100, "listingType": "BUY", "propertyType": "VILLA",
			"status": "AVAILABLE", "address": "x", "city": "Rabat", "surfaceArea": 50,
			"approved": true}`},
		{"latitude out of range", `{
			"price": 100, "listingType": "BUY", "propertyType": "VILLA",
			"status": "AVAILABLE", "address": "x", "city": "Rabat", "surfaceArea": 50,
			"latitude": 120}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidatePropertyPayload([]byte(tc.body)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateUnknownSchemaKey(t *testing.T) {
	if err := Validate("no/such-schema", []byte(`{}`)); err == nil {
		t.Fatal("expected error for unknown schema key")
	}
}
