package authController

import (
	"log"

	"paydash/dispatch"
	"paydash/gateway"
	"paydash/middleware"
	"paydash/session"
	"paydash/utils"

	"github.com/gofiber/fiber/v2"
)

// Login authenticates against the remote backend and opens a gateway
// session holding the issued tokens and user snapshot.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	sess := gateway.Sessions.Create()
	client := gateway.NewClient(sess)

	result, err := client.Login(reqData.Email, reqData.Password)
	if err != nil {
		gateway.DropSession(sess.ID())
		return gateway.ErrorResponse(c, err)
	}

	user := &session.User{
		FullName:     result.User.FullName,
		Email:        result.User.Email,
		MobileNumber: result.User.MobileNumber,
		UserType:     result.User.UserType,
		Status:       result.User.Status,
		CreatedAt:    result.User.CreatedAt,
		UpdatedAt:    result.User.UpdatedAt,
	}

	if err := sess.Set(result.Token, result.RefreshToken, user); err != nil {
		log.Printf("Failed to persist session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	sessionJWT, err := middleware.GenerateSessionJWT(sess.ID())
	if err != nil {
		log.Printf("Failed to sign session token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// The poller follows the most recent login.
	utils.SetPollerClient(gateway.NewClient(sess))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": sessionJWT,
		"user":  user,
	})
}

// Logout drops the gateway session and all persisted client state.
func Logout(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	if sess != nil {
		gateway.DropSession(sess.ID())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out!", nil)
}

// CurrentUser returns the authenticated-user snapshot. The cached copy
// answers by default; refresh=true re-fetches from the backend.
func CurrentUser(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	if c.QueryBool("refresh") {
		client := gateway.NewClient(sess)
		data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupUserDetails, func() (interface{}, error) {
			return client.UserDetails()
		})
		if err != nil {
			return gateway.ErrorResponse(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", data)
	}

	user := sess.CurrentUser()
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in again", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user)
}
