package access

type Action string

const (
	ActionBookAppointment               Action = "book_appointment"
	ActionUploadSkinReport              Action = "upload_skin_report"
	ActionListCosmetologistAppointments Action = "list_cosmetologist_appointments"
	ActionCreateRecommendation          Action = "create_recommendation"
	ActionAddConsultationNotes          Action = "add_consultation_notes"
	ActionRegisterCosmetologist         Action = "register_cosmetologist"
	ActionUpdateAvailability            Action = "update_availability"
	ActionListUserReports               Action = "list_user_reports"
	ActionListAuthoredRecommendations   Action = "list_authored_recommendations"
	ActionManageRoles                   Action = "manage_roles"
	ActionViewAuditLogs                 Action = "view_audit_logs"
)

// Actions lists every action covered by the permission table.
var Actions = []Action{
	ActionBookAppointment,
	ActionUploadSkinReport,
	ActionListCosmetologistAppointments,
	ActionCreateRecommendation,
	ActionAddConsultationNotes,
	ActionRegisterCosmetologist,
	ActionUpdateAvailability,
	ActionListUserReports,
	ActionListAuthoredRecommendations,
	ActionManageRoles,
	ActionViewAuditLogs,
}

var (
	everyone = []Role{RoleUser, RoleCosmetologist, RoleAdmin, RoleSuperadmin}
	staff    = []Role{RoleCosmetologist, RoleAdmin}
)

// permissions is the role × action matrix. Anything absent is denied.
var permissions = map[Action][]Role{
	ActionBookAppointment:               everyone,
	ActionUploadSkinReport:              everyone,
	ActionListCosmetologistAppointments: {RoleCosmetologist},
	ActionCreateRecommendation:          staff,
	ActionAddConsultationNotes:          staff,
	ActionRegisterCosmetologist:         staff,
	ActionUpdateAvailability:            staff,
	ActionListUserReports:               staff,
	ActionListAuthoredRecommendations:   staff,
	ActionManageRoles:                   {RoleSuperadmin},
	ActionViewAuditLogs:                 {RoleAdmin, RoleSuperadmin},
}

// Allowed reports whether role may perform action.
func Allowed(role Role, action Action) bool {
	for _, r := range permissions[action] {
		if r == role {
			return true
		}
	}
	return false
}

// RolesFor returns the roles permitted to perform action.
func RolesFor(action Action) []Role {
	out := make([]Role, len(permissions[action]))
	copy(out, permissions[action])
	return out
}
