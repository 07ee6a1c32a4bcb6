package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	apperrors "github.com/CSAbhinav3/IWP-CIA3/pkg/util"
)

const identityKey = "auth_identity"

// roleGates maps roles to their status predicate. Only companies are
// status-gated; students and faculty pass unconditionally.
var roleGates = map[domain.Role]func(*Identity) error{
	domain.RoleCompany: func(identity *Identity) error {
		if identity.Status != domain.CompanyStatusApproved {
			return apperrors.NewForbidden("Account not approved")
		}
		return nil
	},
}

// Middleware validates bearer tokens, loads the caller's live account
// record, and attaches the resolved identity to the request.
type Middleware struct {
	tokens   *TokenManager
	resolver Resolver
	logger   *zap.Logger
}

// NewMiddleware constructs the request gate.
func NewMiddleware(tokens *TokenManager, resolver Resolver, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, resolver: resolver, logger: logger}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := extractBearer(c.Get("Authorization"))
	if token == "" {
		return apperrors.NewUnauthorized("Authentication token required")
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewUnauthorizedFrom("Invalid or expired token", err)
	}

	identity, err := m.resolver.Resolve(c.UserContext(), claims)
	if err != nil {
		// Store failures are deliberately collapsed into the same
		// response as verification failures; the cause stays in logs.
		m.logger.Error("identity resolution failed",
			zap.Int64("subject_id", claims.SubjectID),
			zap.String("role", string(claims.Role)),
			zap.Error(err))
		return apperrors.NewUnauthorizedFrom("Invalid or expired token", err)
	}
	if identity == nil {
		return apperrors.NewUnauthorized("Invalid token")
	}

	if gate, ok := roleGates[identity.Type]; ok {
		if err := gate(identity); err != nil {
			return err
		}
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
