package serverutils

import (
	"shared-notes-be/internal/repository/cache"
	"shared-notes-be/internal/repository/specification"
	"shared-notes-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// NewAuthMiddleware guards routes with a bearer access token. On top of
// signature and expiry checks, the token must still match the copy in
// the token store — logout empties the store, revoking tokens that are
// otherwise cryptographically valid until expiry.
func NewAuthMiddleware(secret string, tokens cache.TokenStore, uowFactory unitofwork.RepositoryFactory) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
		}

		tokenType, _ := claims["type"].(string)
		if tokenType != TokenTypeAccess {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token type"))
		}

		username, _ := claims["sub"].(string)
		if username == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
		}

		uow := uowFactory.NewUnitOfWork(ctx.Context())
		user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByUsername{Username: username})
		if err != nil || user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}
		if !user.IsActive {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Inactive user"))
		}

		stored, err := tokens.GetAccessToken(ctx.Context(), user.Id)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}
		if stored == "" || stored != tokenStr {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Token revoked"))
		}

		ctx.Locals("user_id", user.Id.String())
		ctx.Locals("username", user.Username)
		return ctx.Next()
	}
}
