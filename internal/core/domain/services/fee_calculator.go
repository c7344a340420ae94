package services

import (
	"fmt"
	"math"

	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

// Fee policy constants, in integer currency units.
const (
	// BaseFee is charged on every parcel regardless of declared value.
	BaseFee = 200

	// ProtectionThreshold is the declared value above which the protection
	// fee applies.
	ProtectionThreshold = 5000

	// ProtectionRate is the fraction of the declared value charged as
	// protection fee when the declared value exceeds ProtectionThreshold.
	ProtectionRate = 0.015

	// HighValueThreshold is the declared value above which a parcel is
	// high-value and subject to two-factor handoff verification.
	HighValueThreshold = 10000
)

// FeeQuote is the fixed valuation of a parcel, computed exactly once at
// creation and never revised.
type FeeQuote struct {
	BaseFee       int
	ProtectionFee int
	TotalFee      int
	HighValue     bool
}

// FeeCalculator computes delivery fees from a declared value. It is a pure,
// deterministic domain service with no dependencies.
type FeeCalculator struct{}

// NewFeeCalculator creates a FeeCalculator instance.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// Calculate returns the fee quote for the given declared value:
// a fixed base fee; a protection fee of ProtectionRate of the declared
// value, rounded to the nearest currency unit, once the value exceeds
// ProtectionThreshold; and the high-value flag once it exceeds
// HighValueThreshold.
func (FeeCalculator) Calculate(declaredValue int) (FeeQuote, error) {
	if declaredValue < 0 {
		return FeeQuote{}, errs.NewValueIsInvalidErrorWithCause("declared value",
			fmt.Errorf("%d is negative", declaredValue))
	}

	protectionFee := 0
	if declaredValue > ProtectionThreshold {
		protectionFee = int(math.Round(float64(declaredValue) * ProtectionRate))
	}

	return FeeQuote{
		BaseFee:       BaseFee,
		ProtectionFee: protectionFee,
		TotalFee:      BaseFee + protectionFee,
		HighValue:     declaredValue > HighValueThreshold,
	}, nil
}
