package models

// HubStatus defines the lifecycle states of a hub
type HubStatus string

const (
	HubStatusActive    HubStatus = "active"
	HubStatusSuspended HubStatus = "suspended"
)

// ShiftStatus defines the lifecycle states of a shift
type ShiftStatus string

const (
	ShiftStatusOpen      ShiftStatus = "open"
	ShiftStatusBooked    ShiftStatus = "booked"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// AssignmentStatus defines the states of a professional's shift assignment
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusConfirmed AssignmentStatus = "confirmed"
	AssignmentStatusDeclined  AssignmentStatus = "declined"
)

// ProfessionalRole defines the trade of a gig professional
type ProfessionalRole string

const (
	RoleBarber    ProfessionalRole = "barber"
	RoleStylist   ProfessionalRole = "stylist"
	RoleChef      ProfessionalRole = "chef"
	RoleBartender ProfessionalRole = "bartender"
	RoleWaitstaff ProfessionalRole = "waitstaff"
)

// IsValid checks if the HubStatus is valid
func (s HubStatus) IsValid() bool {
	switch s {
	case HubStatusActive, HubStatusSuspended:
		return true
	}
	return false
}

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusOpen, ShiftStatusBooked, ShiftStatusCompleted, ShiftStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusConfirmed, AssignmentStatusDeclined:
		return true
	}
	return false
}

// IsValid checks if the ProfessionalRole is valid
func (r ProfessionalRole) IsValid() bool {
	switch r {
	case RoleBarber, RoleStylist, RoleChef, RoleBartender, RoleWaitstaff:
		return true
	}
	return false
}

// CountsTowardFill reports whether an assignment in this status contributes
// to a shift's assigned-staff count. Declined assignments stay on record but
// do not fill the slot.
func (s AssignmentStatus) CountsTowardFill() bool {
	return s == AssignmentStatusPending || s == AssignmentStatusConfirmed
}
