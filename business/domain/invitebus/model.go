package invitebus

import (
	"net/mail"

	"github.com/jcpaschoal/admindashboard/business/types/role"
)

// Status of an invitation. Invitations are created pending; accepting them
// happens outside this service.
const StatusPending = "PENDING"

// Invitation represents a pending invitation to join a business.
type Invitation struct {
	Email     mail.Address
	Role      role.Role
	InvitedBy string
	Status    string
}

// NewInvitation contains information needed to invite a member.
type NewInvitation struct {
	Email     mail.Address
	Role      role.Role
	InvitedBy string
}
