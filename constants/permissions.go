package constants

// Organization permissions
const (
	// Admin permissions
	PermAdminFull        = "sourcing.admin.full-permit"
	PermKoreanStaffFull  = "sourcing.korean-staff.full-permit"
	PermChineseStaffFull = "sourcing.chinese-staff.full-permit"
	PermCustomerFull     = "sourcing.customer.full-permit"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	StaffPermissions = []string{
		PermAdminFull,
		PermKoreanStaffFull,
		PermChineseStaffFull,
	}
)
