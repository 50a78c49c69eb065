package entities

// Role is the fixed set of user roles returned by authentication.
type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RoleSalesRep   Role = "Sales Rep"
	RoleMiniAgent  Role = "Mini Agent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleSalesRep, RoleMiniAgent:
		return true
	}
	return false
}

// Feature names a capability gated by role.
type Feature string

const (
	FeatureDashboard       Feature = "dashboard"
	FeatureCatalog         Feature = "catalog"
	FeatureCustomers       Feature = "customers"
	FeatureQuoteBuilder    Feature = "quote_builder"
	FeatureAdminPanel      Feature = "admin_panel"
	FeatureRequestApproval Feature = "request_approval"
)

var Features = []Feature{
	FeatureDashboard,
	FeatureCatalog,
	FeatureCustomers,
	FeatureQuoteBuilder,
	FeatureAdminPanel,
	FeatureRequestApproval,
}

// CanAccess reports whether role may use feature.
func CanAccess(role Role, feature Feature) bool {
	if !role.Valid() {
		return false
	}
	switch feature {
	case FeatureDashboard, FeatureCatalog, FeatureCustomers, FeatureQuoteBuilder:
		return true
	case FeatureAdminPanel:
		return role == RoleSuperAdmin || role == RoleAdmin
	case FeatureRequestApproval:
		return role == RoleMiniAgent
	}
	return false
}

// FeaturesFor lists the features role can access, in declaration order.
func FeaturesFor(role Role) []Feature {
	out := make([]Feature, 0, len(Features))
	for _, f := range Features {
		if CanAccess(role, f) {
			out = append(out, f)
		}
	}
	return out
}
