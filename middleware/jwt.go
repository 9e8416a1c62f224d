package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"paydash/config"
	"paydash/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateSessionJWT signs a gateway token carrying the session id. The
// backend's own bearer/refresh tokens never leave the server side.
func GenerateSessionJWT(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// SessionMiddleware checks for a valid gateway JWT and resolves the live
// session context for downstream handlers.
func SessionMiddleware(manager *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get the token from the Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}

		// Extract the token part
		tokenString := authHeader[len("Bearer "):]

		// Parse and validate the token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Check if the token method is valid
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			jwtSecret := []byte(config.AppConfig.JWTKey)
			return jwtSecret, nil
		})

		// If there's an error parsing the token
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}

		// Extract the session id from the token claims
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["sid"] == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		sessionID, ok := claims["sid"].(string)
		if !ok || sessionID == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		sess := manager.Get(sessionID)
		if sess == nil || !sess.Authenticated() {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in again", nil)
		}

		// Set the session in the request context
		c.Locals("session", sess)

		// If valid, continue to the next handler
		return c.Next()
	}
}

// SessionFromCtx returns the session placed by SessionMiddleware.
func SessionFromCtx(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals("session").(*session.Session)
	return sess
}

// JsonResponse writes the standard response envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, response bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"response":  response,
		"message":   message,
		"data":      data,
		"status":    http.StatusText(statusCode),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ValidationErrorResponse reports client-side validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
