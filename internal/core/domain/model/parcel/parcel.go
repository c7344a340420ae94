package parcel

import (
	"errors"
	"fmt"
	"time"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through the NewParcel or RestoreParcel constructors.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

// ErrVerificationNotApplicable is returned when a handoff code is submitted
// for a parcel that is not high-value. Such parcels carry no codes and no
// verification gate applies to them.
var ErrVerificationNotApplicable = errs.NewValueIsInvalidError(
	"verification is not applicable to a parcel that is not high-value")

// HandoffCodeLength is the fixed length of the numeric handoff codes
// carried by high-value parcels.
const HandoffCodeLength = 4

// Parcel is the aggregate root for the unit of custody. It owns the
// lifecycle of a physical handoff across a customer, one or two riders, and
// the warehouse: status transitions, rider bindings, and the high-value
// verification gates.
//
// Invariants:
//   - The tracking code is assigned exactly once, at creation
//   - totalFee == baseFee + protectionFee for the lifetime of the parcel
//   - Handoff codes exist exactly when the parcel is high-value
//   - Verified flags move false -> true exactly once and never revert
//   - A collection rider is bound before the parcel can reach at_warehouse;
//     a delivery rider is bound before it can reach out_for_delivery
//   - Status never regresses except to the terminal Cancelled state
//
// Every failed transition returns a TransitionRejectedError and leaves the
// aggregate untouched.
type Parcel struct {
	id           kernel.UUID
	trackingCode string
	customerID   kernel.UUID

	collectionRiderID *kernel.UUID
	deliveryRiderID   *kernel.UUID

	route       Route
	description string
	size        SizeClass

	declaredValue int
	baseFee       int
	protectionFee int
	totalFee      int
	highValue     bool

	warehouseCode     string
	deliveryCode      string
	warehouseVerified bool
	deliveryVerified  bool

	status    Status
	version   int
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel in SearchingRider status. Fees come from the
// fee engine and are fixed for the lifetime of the parcel; the tracking code
// and, for high-value parcels, the two handoff codes come from the
// credential generator.
func NewParcel(
	id kernel.UUID,
	trackingCode string,
	customerID kernel.UUID,
	route Route,
	description string,
	size SizeClass,
	declaredValue int,
	baseFee int,
	protectionFee int,
	highValue bool,
	warehouseCode string,
	deliveryCode string,
) (*Parcel, error) {
	now := time.Now().UTC()
	p := &Parcel{
		status:    SearchingRider,
		version:   1,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setCustomerID(customerID),
		p.setRoute(route),
		p.setDescription(description),
		p.setSize(size),
		p.setValuation(declaredValue, baseFee, protectionFee, highValue),
		p.setHandoffCodes(highValue, warehouseCode, deliveryCode),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel aggregate from persistent storage,
// preserving its status, bindings, verification state, version, and
// timestamps.
func RestoreParcel(
	id kernel.UUID,
	trackingCode string,
	customerID kernel.UUID,
	collectionRiderID *kernel.UUID,
	deliveryRiderID *kernel.UUID,
	route Route,
	description string,
	size SizeClass,
	declaredValue int,
	baseFee int,
	protectionFee int,
	highValue bool,
	warehouseCode string,
	deliveryCode string,
	warehouseVerified bool,
	deliveryVerified bool,
	status Status,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setCustomerID(customerID),
		p.setRoute(route),
		p.setDescription(description),
		p.setSize(size),
		p.setValuation(declaredValue, baseFee, protectionFee, highValue),
		p.setHandoffCodes(highValue, warehouseCode, deliveryCode),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if collectionRiderID != nil {
		if err := collectionRiderID.Validate(); err != nil {
			return nil, err
		}
		riderID := *collectionRiderID
		p.collectionRiderID = &riderID
	}
	if deliveryRiderID != nil {
		if err := deliveryRiderID.Validate(); err != nil {
			return nil, err
		}
		riderID := *deliveryRiderID
		p.deliveryRiderID = &riderID
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("parcel version",
			fmt.Errorf("%d is not a valid aggregate version", version))
	}

	p.warehouseVerified = warehouseVerified
	p.deliveryVerified = deliveryVerified
	p.status = status
	p.version = version
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// AcceptCollection binds the acting rider as the collection rider and moves
// the parcel to PickedUp. Exactly one rider can win this binding; a parcel
// that already has a collection rider rejects further attempts.
func (p *Parcel) AcceptCollection(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if p.collectionRiderID != nil {
		return NewTransitionRejectedError(ErrAlreadyBound, "already accepted by another rider")
	}

	newStatus, err := p.status.PickUp()
	if err != nil {
		return err
	}

	p.collectionRiderID = &riderID
	p.status = newStatus
	p.touch()
	return nil
}

// MarkAtWarehouse records the hub handoff. Only the bound collection rider
// may report it.
func (p *Parcel) MarkAtWarehouse(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if p.collectionRiderID == nil {
		return NewTransitionRejectedError(ErrNotBound, "no collection rider bound")
	}
	if !riderID.IsEqual(*p.collectionRiderID) {
		return NewTransitionRejectedError(ErrWrongActor, "only the bound collection rider can mark the warehouse arrival")
	}

	newStatus, err := p.status.ArriveAtWarehouse()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// AssignDeliveryRider binds a delivery rider at the warehouse on behalf of
// an admin. The rider's home zone must match the delivery zone unless the
// admin overrides the check. Assigning the rider who is already bound is a
// no-op, so dispatch also completes parcels whose rider self-served via
// AcceptDelivery. The status does not change; StartDelivery performs the
// out_for_delivery transition.
func (p *Parcel) AssignDeliveryRider(riderID kernel.UUID, riderZone kernel.Zone, override bool) error {
	if err := errors.Join(riderID.Validate(), riderZone.Validate()); err != nil {
		return err
	}
	if p.status != AtWarehouse {
		return rejectStatus(p.status, "assign a delivery rider to", AtWarehouse)
	}
	if p.deliveryRiderID != nil {
		if riderID.IsEqual(*p.deliveryRiderID) {
			return nil
		}
		return NewTransitionRejectedError(ErrAlreadyBound, "a delivery rider is already assigned")
	}
	if !override && !riderZone.Matches(p.route.DeliveryZone()) {
		return NewTransitionRejectedError(ErrZoneMismatch,
			fmt.Sprintf("rider zone %s does not match delivery zone %s", riderZone, p.route.DeliveryZone()))
	}

	p.deliveryRiderID = &riderID
	p.touch()
	return nil
}

// AcceptDelivery binds the acting rider as the delivery rider, self-serve.
// The rider's home zone must match the delivery zone; there is no override
// on this path.
func (p *Parcel) AcceptDelivery(riderID kernel.UUID, riderZone kernel.Zone) error {
	if err := errors.Join(riderID.Validate(), riderZone.Validate()); err != nil {
		return err
	}
	if p.status != AtWarehouse {
		return rejectStatus(p.status, "accept delivery of", AtWarehouse)
	}
	if p.deliveryRiderID != nil {
		return NewTransitionRejectedError(ErrAlreadyBound, "already accepted by another rider")
	}
	if !riderZone.Matches(p.route.DeliveryZone()) {
		return NewTransitionRejectedError(ErrZoneMismatch,
			fmt.Sprintf("rider zone %s does not match delivery zone %s", riderZone, p.route.DeliveryZone()))
	}

	p.deliveryRiderID = &riderID
	p.touch()
	return nil
}

// StartDelivery moves the parcel out for delivery. A delivery rider must be
// bound first.
func (p *Parcel) StartDelivery() error {
	if p.deliveryRiderID == nil {
		return NewTransitionRejectedError(ErrNotBound, "no delivery rider bound")
	}

	newStatus, err := p.status.StartDelivery()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// VerifyWarehouseCode matches the submitted code against the stored
// warehouse handoff code. Only the bound collection rider may submit it,
// only while the parcel is at the warehouse, and only once. A mismatch
// mutates nothing.
func (p *Parcel) VerifyWarehouseCode(riderID kernel.UUID, submittedCode string) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if !p.highValue {
		return ErrVerificationNotApplicable
	}
	if p.status != AtWarehouse {
		return rejectStatus(p.status, "verify the warehouse code of", AtWarehouse)
	}
	if p.collectionRiderID == nil {
		return NewTransitionRejectedError(ErrNotBound, "no collection rider bound")
	}
	if !riderID.IsEqual(*p.collectionRiderID) {
		return NewTransitionRejectedError(ErrWrongActor, "only the bound collection rider can verify the warehouse code")
	}
	if p.warehouseVerified {
		return NewTransitionRejectedError(ErrAlreadyVerified, "warehouse handoff is already verified")
	}
	if submittedCode != p.warehouseCode {
		return NewTransitionRejectedError(ErrCodeMismatch, "warehouse code does not match")
	}

	p.warehouseVerified = true
	p.touch()
	return nil
}

// VerifyDeliveryCode matches the submitted code against the stored delivery
// handoff code. Only the bound delivery rider may submit it, only while the
// parcel is out for delivery, and only once. A mismatch mutates nothing.
func (p *Parcel) VerifyDeliveryCode(riderID kernel.UUID, submittedCode string) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if !p.highValue {
		return ErrVerificationNotApplicable
	}
	if p.status != OutForDelivery {
		return rejectStatus(p.status, "verify the delivery code of", OutForDelivery)
	}
	if p.deliveryRiderID == nil {
		return NewTransitionRejectedError(ErrNotBound, "no delivery rider bound")
	}
	if !riderID.IsEqual(*p.deliveryRiderID) {
		return NewTransitionRejectedError(ErrWrongActor, "only the bound delivery rider can verify the delivery code")
	}
	if p.deliveryVerified {
		return NewTransitionRejectedError(ErrAlreadyVerified, "delivery handoff is already verified")
	}
	if submittedCode != p.deliveryCode {
		return NewTransitionRejectedError(ErrCodeMismatch, "delivery code does not match")
	}

	p.deliveryVerified = true
	p.touch()
	return nil
}

// MarkDelivered completes the final handoff. Only the bound delivery rider
// may report it, and a high-value parcel must have its delivery code
// verified first.
func (p *Parcel) MarkDelivered(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if p.deliveryRiderID == nil {
		return NewTransitionRejectedError(ErrNotBound, "no delivery rider bound")
	}
	if !riderID.IsEqual(*p.deliveryRiderID) {
		return NewTransitionRejectedError(ErrWrongActor, "only the bound delivery rider can mark the delivery")
	}
	if p.highValue && !p.deliveryVerified {
		return NewTransitionRejectedError(ErrVerificationRequired,
			"delivery code must be verified before a high-value parcel can be delivered")
	}

	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the immutable human-facing tracking code.
func (p *Parcel) TrackingCode() string {
	return p.trackingCode
}

// CustomerID returns the owning customer's identifier.
func (p *Parcel) CustomerID() kernel.UUID {
	return p.customerID
}

// CollectionRider returns the bound collection rider's ID, or nil.
func (p *Parcel) CollectionRider() *kernel.UUID {
	return p.collectionRiderID
}

// DeliveryRider returns the bound delivery rider's ID, or nil.
func (p *Parcel) DeliveryRider() *kernel.UUID {
	return p.deliveryRiderID
}

// Route returns the pickup/delivery route of the parcel.
func (p *Parcel) Route() Route {
	return p.route
}

// Description returns the free-text item description.
func (p *Parcel) Description() string {
	return p.description
}

// Size returns the declared size class.
func (p *Parcel) Size() SizeClass {
	return p.size
}

// DeclaredValue returns the customer-declared value of the contents.
func (p *Parcel) DeclaredValue() int {
	return p.declaredValue
}

// BaseFee returns the fixed base delivery fee.
func (p *Parcel) BaseFee() int {
	return p.baseFee
}

// ProtectionFee returns the value-protection fee.
func (p *Parcel) ProtectionFee() int {
	return p.protectionFee
}

// TotalFee returns baseFee + protectionFee.
func (p *Parcel) TotalFee() int {
	return p.totalFee
}

// IsHighValue reports whether the declared value requires two-factor
// handoff verification.
func (p *Parcel) IsHighValue() bool {
	return p.highValue
}

// WarehouseCode returns the warehouse handoff code, or "" when the parcel
// is not high-value.
func (p *Parcel) WarehouseCode() string {
	return p.warehouseCode
}

// DeliveryCode returns the delivery handoff code, or "" when the parcel is
// not high-value.
func (p *Parcel) DeliveryCode() string {
	return p.deliveryCode
}

// WarehouseVerified reports whether the warehouse handoff was verified.
func (p *Parcel) WarehouseVerified() bool {
	return p.warehouseVerified
}

// DeliveryVerified reports whether the delivery handoff was verified.
func (p *Parcel) DeliveryVerified() bool {
	return p.deliveryVerified
}

// Status returns the current custody status.
func (p *Parcel) Status() Status {
	return p.status
}

// Version returns the optimistic concurrency token. The repository
// compare-and-swaps on it so that racing writers cannot overwrite each
// other's bindings.
func (p *Parcel) Version() int {
	return p.version
}

// CreatedAt returns the immutable creation time.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the time of the last successful mutation.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Parcel) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("tracking code")
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	p.customerID = id
	return nil
}

func (p *Parcel) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	p.route = route
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Parcel) setSize(size SizeClass) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}

func (p *Parcel) setValuation(declaredValue, baseFee, protectionFee int, highValue bool) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declared value",
			fmt.Errorf("%d is negative", declaredValue))
	}
	if baseFee < 0 || protectionFee < 0 {
		return errs.NewValueIsInvalidError("fees cannot be negative")
	}

	p.declaredValue = declaredValue
	p.baseFee = baseFee
	p.protectionFee = protectionFee
	p.totalFee = baseFee + protectionFee
	p.highValue = highValue
	return nil
}

func (p *Parcel) setHandoffCodes(highValue bool, warehouseCode, deliveryCode string) error {
	if !highValue {
		if warehouseCode != "" || deliveryCode != "" {
			return errs.NewValueIsInvalidError("handoff codes are only valid for high-value parcels")
		}
		return nil
	}

	if err := errors.Join(
		validateHandoffCode("warehouse code", warehouseCode),
		validateHandoffCode("delivery code", deliveryCode),
	); err != nil {
		return err
	}

	p.warehouseCode = warehouseCode
	p.deliveryCode = deliveryCode
	return nil
}

func validateHandoffCode(name, code string) error {
	if len(code) != HandoffCodeLength {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("handoff codes must be exactly %d digits", HandoffCodeLength))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("handoff codes must be numeric"))
		}
	}
	return nil
}
