package request

type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	Location       *string `json:"location,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	MembershipType *string `json:"membership_type,omitempty"`
}
