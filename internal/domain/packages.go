package domain

// Package types. "individual" is priced from the referenced course; the other
// two carry a fixed price.
const (
	PackageIndividual   = "individual"
	PackageBundle       = "bundle"
	PackageSubscription = "subscription"
)

// Package describes a purchasable offering.
type Package struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price,omitempty"` // zero for individual: price comes from the course
}

// AvailablePackages returns all purchasable packages.
func AvailablePackages() []Package {
	return []Package{
		{
			Type:        PackageIndividual,
			Name:        "Individual Course",
			Description: "Access to a single course",
		},
		{
			Type:        PackageBundle,
			Name:        "Course Bundle",
			Description: "Access to 3 courses",
			Price:       199.99,
		},
		{
			Type:        PackageSubscription,
			Name:        "Monthly Subscription",
			Description: "Unlimited access to all courses",
			Price:       49.99,
		},
	}
}

// GetPackage returns the package for a given type.
func GetPackage(packageType string) (Package, bool) {
	for _, p := range AvailablePackages() {
		if p.Type == packageType {
			return p, true
		}
	}
	return Package{}, false
}

// PackageMap returns packages keyed by type, the shape served by /api/packages.
func PackageMap() map[string]Package {
	m := make(map[string]Package, len(AvailablePackages()))
	for _, p := range AvailablePackages() {
		m[p.Type] = p
	}
	return m
}
