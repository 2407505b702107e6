package teamapp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/business/domain/invitebus"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/types/role"
)

// Member represents a member of the caller's business.
type Member struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	LastActiveAt *string `json:"lastActiveAt"`
}

func toAppMember(bus userbus.User) Member {
	var lastActive *string
	if bus.LastActiveAt != nil {
		s := bus.LastActiveAt.Format(time.RFC3339)
		lastActive = &s
	}

	return Member{
		ID:           bus.ID,
		Email:        bus.Email,
		Role:         bus.Role.String(),
		Status:       bus.Status.String(),
		CreatedAt:    bus.CreatedAt.Format(time.RFC3339),
		LastActiveAt: lastActive,
	}
}

// Members is the list of members of a business.
type Members []Member

// Encode implements the web.Encoder interface.
func (m Members) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

func toAppMembers(users []userbus.User) Members {
	app := make(Members, len(users))
	for i, usr := range users {
		app[i] = toAppMember(usr)
	}
	return app
}

// =============================================================================

// UpdateRole defines the data needed to change a member's role.
type UpdateRole struct {
	Role string `json:"role" validate:"required,oneof=OWNER MANAGER STAFF"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateRole) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateRole) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, errInvalidRole)
	}
	return nil
}

// MemberRole is returned after a role change.
type MemberRole struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Encode implements the web.Encoder interface.
func (m MemberRole) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

// =============================================================================

// UpdateStatus defines the data needed to activate or deactivate a member.
type UpdateStatus struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateStatus) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateStatus) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, errInvalidStatus)
	}
	return nil
}

// MemberStatus is returned after a status change.
type MemberStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Encode implements the web.Encoder interface.
func (m MemberStatus) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

// =============================================================================

// NewInvite defines the data needed to invite someone to the business.
type NewInvite struct {
	Email string `json:"email" validate:"notblank,email"`
	Role  string `json:"role" validate:"required,oneof=OWNER MANAGER STAFF"`
}

// Decode implements the web.Decoder interface. The email is trimmed before
// validation.
func (app *NewInvite) Decode(data []byte) error {
	if err := json.Unmarshal(data, app); err != nil {
		return err
	}

	app.Email = strings.TrimSpace(app.Email)
	return nil
}

// Validate checks the data in the model is considered clean.
func (app NewInvite) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, errInvalidInvite)
	}
	return nil
}

func toBusNewInvitation(app NewInvite, invitedBy string) (invitebus.NewInvitation, error) {
	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		return invitebus.NewInvitation{}, fmt.Errorf("parse email: %w", err)
	}

	rl, err := role.Parse(app.Role)
	if err != nil {
		return invitebus.NewInvitation{}, fmt.Errorf("parse role: %w", err)
	}

	ni := invitebus.NewInvitation{
		Email:     *addr,
		Role:      rl,
		InvitedBy: invitedBy,
	}

	return ni, nil
}

// Invitation is returned after an invite is recorded.
type Invitation struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// Encode implements the web.Encoder interface.
func (i Invitation) Encode() ([]byte, string, error) {
	data, err := json.Marshal(i)
	return data, "application/json", err
}

// HTTPStatus implements the web package httpStatus interface.
func (i Invitation) HTTPStatus() int {
	return http.StatusCreated
}

func toAppInvitation(bus invitebus.Invitation) Invitation {
	return Invitation{
		Email:  bus.Email.Address,
		Role:   bus.Role.String(),
		Status: bus.Status,
	}
}
