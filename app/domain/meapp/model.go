package meapp

import (
	"encoding/json"

	"github.com/jcpaschoal/admindashboard/app/sdk/auth"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
)

// Me represents the resolved identity of the caller.
type Me struct {
	UserID       string `json:"userId"`
	BusinessID   string `json:"businessId"`
	BusinessName string `json:"businessName"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

// Encode implements the web.Encoder interface.
func (m Me) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

func toAppMe(uc auth.UserContext, biz businessbus.Business) Me {
	return Me{
		UserID:       uc.UserID,
		BusinessID:   uc.BusinessID.String(),
		BusinessName: biz.Name,
		Role:         uc.Role.String(),
		Status:       uc.Status.String(),
	}
}
