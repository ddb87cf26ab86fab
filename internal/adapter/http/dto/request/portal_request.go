package request

// PortalAuthRequest authenticates a client against the portal with either
// the share token or the optional password. Keys are camelCase because the
// portal frontend sends them that way.
type PortalAuthRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Token    string `json:"token"`
	Password string `json:"password"`
}
