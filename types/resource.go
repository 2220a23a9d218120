package types

// Resource is a named protectable capability or domain object.
// The namespace is open: any string is a valid resource, the constants below
// only name the ones the built-in catalog knows about.
type Resource string

// well-known resources of the ops dashboard
const (
	ResourceDashboard  Resource = "dashboard"
	ResourceProducts   Resource = "products"
	ResourceCustomers  Resource = "customers"
	ResourcePurchases  Resource = "purchases"
	ResourceUnits      Resource = "units"
	ResourceProduction Resource = "production"
	ResourceReports    Resource = "reports"
	ResourceBranches   Resource = "branches"
	ResourceStaff      Resource = "staff"
	ResourceSettings   Resource = "settings"
	ResourceSuperAdmin Resource = "super_admin"
)

func (r Resource) String() string {
	return string(r)
}
