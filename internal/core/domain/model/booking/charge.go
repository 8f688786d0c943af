package booking

// ChargePolicy computes the total charge for a shipment from its cargo
// detail. The policy is pluggable so future tax or fee logic replaces the
// flat policy without touching the aggregate.
type ChargePolicy interface {
	// Total returns the total charge for a shipment with the given weight
	// and declared value.
	Total(weight, declaredValue float64) float64
}

// FlatDeclaredValuePolicy charges exactly the declared value of the cargo.
// This is the simplest policy and the one in production use.
type FlatDeclaredValuePolicy struct{}

// NewFlatDeclaredValuePolicy creates the flat declared-value charge policy.
func NewFlatDeclaredValuePolicy() FlatDeclaredValuePolicy {
	return FlatDeclaredValuePolicy{}
}

// Total returns the declared value unchanged.
func (FlatDeclaredValuePolicy) Total(_ float64, declaredValue float64) float64 {
	return declaredValue
}
