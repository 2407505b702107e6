// Package teamapp maintains the app layer api for the members of a business.
package teamapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/jcpaschoal/admindashboard/app/sdk/errs"
	"github.com/jcpaschoal/admindashboard/app/sdk/mid"
	"github.com/jcpaschoal/admindashboard/business/domain/invitebus"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/sdk/web"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/jcpaschoal/admindashboard/business/types/status"
)

var (
	errInvalidRole   = errors.New("Invalid role")
	errInvalidStatus = errors.New("Invalid status")
	errInvalidInvite = errors.New("Invalid email or role")
)

type app struct {
	userBus   *userbus.Core
	inviteBus *invitebus.Core
}

func newApp(userBus *userbus.Core, inviteBus *invitebus.Core) *app {
	return &app{
		userBus:   userBus,
		inviteBus: inviteBus,
	}
}

// query lists the members of the caller's business, oldest first.
func (a *app) query(ctx context.Context, _ *http.Request) web.Encoder {
	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	usrs, err := a.userBus.QueryByBusiness(ctx, uc.BusinessID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: businessID[%s]: %s", uc.BusinessID, err)
	}

	return toAppMembers(usrs)
}

func (a *app) updateRole(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateRole
	if err := web.Decode(r, &app); err != nil {
		if errs.IsError(err) {
			return errs.GetError(err)
		}
		return errs.New(errs.InvalidArgument, errInvalidRole)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	rl, err := role.Parse(app.Role)
	if err != nil {
		return errs.New(errs.InvalidArgument, errInvalidRole)
	}

	memberID := web.Param(r, "id")

	if err := a.userBus.UpdateRole(ctx, uc.BusinessID, memberID, rl); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "updaterole: memberID[%s]: %s", memberID, err)
	}

	return MemberRole{ID: memberID, Role: rl.String()}
}

func (a *app) updateStatus(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateStatus
	if err := web.Decode(r, &app); err != nil {
		if errs.IsError(err) {
			return errs.GetError(err)
		}
		return errs.New(errs.InvalidArgument, errInvalidStatus)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	st, err := status.Parse(app.Status)
	if err != nil {
		return errs.New(errs.InvalidArgument, errInvalidStatus)
	}

	memberID := web.Param(r, "id")

	if err := a.userBus.UpdateStatus(ctx, uc.BusinessID, memberID, st); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "updatestatus: memberID[%s]: %s", memberID, err)
	}

	return MemberStatus{ID: memberID, Status: st.String()}
}

func (a *app) invite(ctx context.Context, r *http.Request) web.Encoder {
	var app NewInvite
	if err := web.Decode(r, &app); err != nil {
		if errs.IsError(err) {
			return errs.GetError(err)
		}
		return errs.New(errs.InvalidArgument, errInvalidInvite)
	}

	uc, err := mid.GetUserContext(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user context missing: %s", err)
	}

	ni, err := toBusNewInvitation(app, uc.UserID)
	if err != nil {
		return errs.New(errs.InvalidArgument, errInvalidInvite)
	}

	inv, err := a.inviteBus.Create(ctx, uc.BusinessID, ni)
	if err != nil {
		if errors.Is(err, invitebus.ErrAlreadyInvited) {
			return errs.New(errs.InvalidArgument, invitebus.ErrAlreadyInvited)
		}
		return errs.Errorf(errs.InternalOnlyLog, "invite: email[%s]: %s", ni.Email.Address, err)
	}

	return toAppInvitation(inv)
}
