package utils

import (
	"math"
	"strconv"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// TaxRate applied at checkout
const TaxRate = 0.10

// Tax computes checkout tax, rounded to the nearest currency unit
func Tax(subtotal float64) float64 {
	return math.Round(subtotal * TaxRate)
}

// TotalWithTax is subtotal plus rounded tax
func TotalWithTax(subtotal float64) float64 {
	return subtotal + Tax(subtotal)
}
