package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard date/time values
	datetime := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	transactionID := "3f1c8a2e-9b0d-4f6a-8f1e-2d3c4b5a6978"

	// Encode the token
	token := EncodeToken(datetime, transactionID)
	assert.NotEmpty(t, token, "Token should not be empty")

	// Decode the token and verify
	decodedDatetime, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, datetime, decodedDatetime, "Datetime should match after decode")
	assert.Equal(t, transactionID, decodedID, "Transaction ID should match after decode")

	// Test case 2: Zero time values
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, transactionID)
	decodedZeroTime, decodedZeroID, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroTime, "Zero time should match after decode")
	assert.Equal(t, transactionID, decodedZeroID, "Transaction ID should match after decode")

	// Test case 3: ID containing the separator still round-trips (SplitN keeps the remainder whole)
	oddID := "id|with|pipes"
	oddToken := EncodeToken(datetime, oddID)
	_, decodedOddID, err := DecodeToken(oddToken)
	assert.NoError(t, err)
	assert.Equal(t, oddID, decodedOddID, "IDs containing the separator should survive the round trip")
}

func TestDecodeTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // Base64 encoded date without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid date format
	invalidDateToken := "bm90YWRhdGV8c29tZS1pZA==" // Base64 encoded "notadate|some-id"
	_, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "datetime parse", "Error should mention datetime parsing issue")
}
