package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToOuterCase_Nested(t *testing.T) {
	input := map[string]interface{}{
		"merchant_info": map[string]interface{}{
			"merchant_serial_number": "123456",
			"callback_prefix":        "https://example.com/cb",
		},
		"transaction": map[string]interface{}{
			"order_id": "order-1",
			"amount":   20000,
		},
		"charges": []interface{}{
			map[string]interface{}{"retry_days": 3},
			"leaf",
		},
	}

	got := ToOuterCase(input)

	want := map[string]interface{}{
		"merchantInfo": map[string]interface{}{
			"merchantSerialNumber": "123456",
			"callbackPrefix":       "https://example.com/cb",
		},
		"transaction": map[string]interface{}{
			"orderId": "order-1",
			"amount":  20000,
		},
		"charges": []interface{}{
			map[string]interface{}{"retryDays": 3},
			"leaf",
		},
	}
	assert.Equal(t, want, got)
}

func TestToInnerCase_CamelAndPascal(t *testing.T) {
	input := map[string]interface{}{
		"orderId":         "order-1",
		"TransactionInfo": map[string]interface{}{"transactionText": "gym"},
		"access_token":    "abc",
	}

	got := ToInnerCase(input)

	assert.Equal(t, map[string]interface{}{
		"order_id":         "order-1",
		"transaction_info": map[string]interface{}{"transaction_text": "gym"},
		"access_token":     "abc",
	}, got)
}

func TestRoundTrip_RestoresCamelCase(t *testing.T) {
	original := map[string]interface{}{
		"productName":        "gym",
		"productDescription": "monthly",
		"pricing": map[string]interface{}{
			"suggestedMaxAmount": 200000,
			"currency":           "NOK",
		},
		"interval": []interface{}{
			map[string]interface{}{"unit": "WEEK", "count": 1},
		},
	}

	assert.Equal(t, original, ToOuterCase(ToInnerCase(original)))
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	nested := map[string]interface{}{"order_id": "a"}
	input := map[string]interface{}{"merchant_info": nested}

	_ = ToOuterCase(input)

	assert.Equal(t, map[string]interface{}{"merchant_info": map[string]interface{}{"order_id": "a"}}, input)
	_, stillSnake := nested["order_id"]
	assert.True(t, stillSnake)
}

func TestTransform_LeavesLeavesAlone(t *testing.T) {
	assert.Equal(t, "snake_case_value", ToOuterCase("snake_case_value"))
	assert.Equal(t, 42, ToInnerCase(42))
	assert.Nil(t, ToInnerCase(nil))
}

func TestTransform_TypedSlicesAndStringMaps(t *testing.T) {
	orders := []map[string]interface{}{
		{"agreement_id": "agr_1", "transaction_type": "RESERVE_CAPTURE"},
	}
	got := ToOuterCase(orders).([]map[string]interface{})
	assert.Equal(t, "agr_1", got[0]["agreementId"])
	assert.Equal(t, "RESERVE_CAPTURE", got[0]["transactionType"])

	headers := map[string]string{"requestId": "x"}
	assert.Equal(t, map[string]string{"request_id": "x"}, ToInnerCase(headers))
}
