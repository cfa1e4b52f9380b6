package plan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Decode(t *testing.T) {
	testCases := []struct {
		name        string
		decoder     *Decoder
		body        string
		expected    Decision
		expectedErr string
	}{
		{
			name:    "product entry",
			decoder: NewDecoder("", ""),
			body:    `{"sys":{"id":"e1","contentType":{"sys":{"id":"product"}}},"fields":{"productName":{"en-US":"Gold"},"price":{"en-US":"19.99"}}}`,
			expected: Decision{
				ContentType: "product",
				Change:      ProductChange{EntryID: "e1", Name: "Gold", Price: "19.99"},
			},
		},
		{
			name:    "numeric price field",
			decoder: NewDecoder("", ""),
			body:    `{"sys":{"id":"e1","contentType":{"sys":{"id":"product"}}},"fields":{"productName":{"en-US":"Gold"},"price":{"en-US":19.99}}}`,
			expected: Decision{
				ContentType: "product",
				Change:      ProductChange{EntryID: "e1", Name: "Gold", Price: "19.99"},
			},
		},
		{
			name:    "other locales are ignored",
			decoder: NewDecoder("", "fr-CA"),
			body:    `{"sys":{"id":"e1","contentType":{"sys":{"id":"product"}}},"fields":{"productName":{"en-US":"Gold","fr-CA":"Or"},"price":{"en-US":"1","fr-CA":"2"}}}`,
			expected: Decision{
				ContentType: "product",
				Change:      ProductChange{EntryID: "e1", Name: "Or", Price: "2"},
			},
		},
		{
			name:     "custom content type",
			decoder:  NewDecoder("plan", ""),
			body:     `{"sys":{"id":"e1","contentType":{"sys":{"id":"product"}}}}`,
			expected: Decision{Skip: true, ContentType: "product"},
		},
		{
			name:        "price given for another locale only",
			decoder:     NewDecoder("", ""),
			body:        `{"sys":{"id":"e1","contentType":{"sys":{"id":"product"}}},"fields":{"productName":{"en-US":"Gold"},"price":{"de-DE":"5"}}}`,
			expectedErr: "invalid price: is required",
		},
		{
			name:        "object where a string is expected",
			decoder:     NewDecoder("", ""),
			body:        `{"sys":{"id":"e1","contentType":{"sys":{"id":"product"}}},"fields":{"productName":{"en-US":{"text":"Gold"}},"price":{"en-US":"5"}}}`,
			expectedErr: "invalid productName: is required",
		},
		{
			name:        "malformed",
			decoder:     NewDecoder("", ""),
			body:        `{"sys"`,
			expectedErr: "malformed notification: invalid JSON",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decision, err := tc.decoder.Decode([]byte(tc.body))

			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, decision)
		})
	}
}

func TestFaultMessage(t *testing.T) {
	stepErr := &StepError{Step: StepCreatePrice, ProductID: "prod_1", Err: errors.New("boom")}

	assert.Equal(t, "create price: boom", stepErr.Error())
	assert.Equal(t, "boom", FaultMessage(stepErr))
	assert.Equal(t, "boom", FaultMessage(fmt.Errorf("sync: %w", stepErr)))
	assert.Equal(t, "invalid price: is required", FaultMessage(&ValidationError{Field: "price", Reason: "is required"}))
}
