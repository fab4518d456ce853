package response

import "storefront-pricing/internal/usecase/readmodel"

type MembershipResponse struct {
	Status          string `json:"status"`
	IsMember        bool   `json:"is_member"`
	SessionIsMember bool   `json:"session_is_member"`
	SessionStale    bool   `json:"session_stale"`
	Threshold       string `json:"threshold"`
}

func FromMembershipView(v *readmodel.MembershipView) *MembershipResponse {
	return &MembershipResponse{
		Status:          v.Status,
		IsMember:        v.IsMember,
		SessionIsMember: v.SessionIsMember,
		SessionStale:    v.SessionStale,
		Threshold:       money(v.Threshold),
	}
}
