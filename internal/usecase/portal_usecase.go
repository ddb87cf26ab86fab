package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

var (
	ErrPortalAuthFailed   = errors.New("portal authentication failed")
	ErrPortalForbidden    = errors.New("estimate does not belong to this client")
	ErrMissingCredentials = errors.New("token or password required")
)

// PortalScope is the token scope issued to authenticated portal sessions.
const PortalScope = "portal"

const portalSessionTTL = 24 * time.Hour

// PortalSession is the payload returned by a successful portal login.
type PortalSession struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Client    entities.Client `json:"client"`
}

// IPortalUseCase is the client-facing surface: authenticate with a share
// token or password, view estimates (which drives the implicit viewed
// transition) and record accept/reject decisions.

type IPortalUseCase interface {
	Auth(ctx context.Context, clientID, token, password string) (PortalSession, error)
	GetEstimate(ctx context.Context, clientID, estimateID string) (entities.Estimate, error)
	Decide(ctx context.Context, clientID, estimateID string, accepted bool) (entities.Estimate, error)
}

type PortalUseCase struct {
	clients   interfaces.IClientRepository
	estimates IEstimateUseCase
	tokens    interfaces.ITokenMaker
}

var _ IPortalUseCase = (*PortalUseCase)(nil)

func NewPortalUseCase(clients interfaces.IClientRepository, estimates IEstimateUseCase, tokens interfaces.ITokenMaker) *PortalUseCase {
	return &PortalUseCase{clients: clients, estimates: estimates, tokens: tokens}
}

// Auth validates a share token or password for the client and issues a
// session token scoped to the portal.
func (u *PortalUseCase) Auth(ctx context.Context, clientID, token, password string) (PortalSession, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return PortalSession{}, ErrInvalidClientID
	}
	token = strings.TrimSpace(token)
	password = strings.TrimSpace(password)
	if token == "" && password == "" {
		return PortalSession{}, ErrMissingCredentials
	}

	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return PortalSession{}, err
	}
	if c.ID == "" {
		// Do not reveal whether the client exists.
		return PortalSession{}, ErrPortalAuthFailed
	}

	ok := false
	switch {
	case token != "":
		ok = constantTimeEqual(token, c.PortalToken)
	case password != "":
		ok = c.PortalPassword != "" && constantTimeEqual(password, c.PortalPassword)
	}
	if !ok {
		return PortalSession{}, ErrPortalAuthFailed
	}

	signed, err := u.tokens.CreateToken(c.ID, PortalScope, portalSessionTTL)
	if err != nil {
		return PortalSession{}, err
	}
	return PortalSession{
		Token:     signed,
		ExpiresAt: time.Now().UTC().Add(portalSessionTTL),
		Client:    c,
	}, nil
}

// GetEstimate returns a client's estimate. The first fetch of a sent
// estimate flips it to viewed; later statuses are untouched.
func (u *PortalUseCase) GetEstimate(ctx context.Context, clientID, estimateID string) (entities.Estimate, error) {
	e, err := u.ownedEstimate(ctx, clientID, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.estimates.MarkViewed(ctx, e.ID)
}

// Decide records the client's accept/reject decision on their estimate.
func (u *PortalUseCase) Decide(ctx context.Context, clientID, estimateID string, accepted bool) (entities.Estimate, error) {
	e, err := u.ownedEstimate(ctx, clientID, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.estimates.Decide(ctx, e.ID, accepted)
}

func (u *PortalUseCase) ownedEstimate(ctx context.Context, clientID, estimateID string) (entities.Estimate, error) {
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ClientID == "" || e.ClientID != strings.TrimSpace(clientID) {
		return entities.Estimate{}, ErrPortalForbidden
	}
	return e, nil
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
