package gateway

import (
	"errors"

	"paydash/config"
	"paydash/dispatch"
	"paydash/middleware"
	"paydash/payoutapi"
	"paydash/session"

	"github.com/gofiber/fiber/v2"
)

// Sessions hands out session contexts per dashboard login.
var Sessions *session.Manager

// Stores holds one lifecycle store per login session.
var Stores *dispatch.Registry

// Init wires the shared gateway state. Called once at startup.
func Init(persist session.Persister) {
	Sessions = session.NewManager(persist)
	Stores = dispatch.NewRegistry()
}

// DispatcherFor returns a dispatcher over the caller's own lifecycle
// store. One user's operation state is never visible to another.
func DispatcherFor(sess *session.Session) *dispatch.Dispatcher {
	return dispatch.NewDispatcher(Stores.For(sess.ID()))
}

// DropSession removes the live session, its persisted state and its
// lifecycle store.
func DropSession(id string) {
	Sessions.Drop(id)
	Stores.Drop(id)
}

// NewClient builds a backend client bound to sess. A 401 anywhere drops
// the live session so the next request forces the login view.
func NewClient(sess *session.Session) *payoutapi.Client {
	cfg := config.AppConfig
	client := payoutapi.NewClient(cfg.PayoutApiURL, cfg.PayoutApiVersion, cfg.PayoutApiTimeout, sess)
	client.OnAuthExpired(func() {
		DropSession(sess.ID())
	})
	return client
}

// ErrorResponse maps a normalized backend failure onto the envelope.
func ErrorResponse(c *fiber.Ctx, err error) error {
	statusCode := fiber.StatusBadGateway
	switch payoutapi.KindOf(err) {
	case payoutapi.KindAuthExpired:
		statusCode = fiber.StatusUnauthorized
	case payoutapi.KindServiceUnavailable:
		statusCode = fiber.StatusServiceUnavailable
	case payoutapi.KindInternalServerError:
		statusCode = fiber.StatusBadGateway
	case payoutapi.KindApplicationError:
		statusCode = fiber.StatusBadRequest
	case payoutapi.KindUnknown:
		// An unclassified upstream 4xx is a client-class failure, not a
		// gateway fault. Keep its status.
		var apiErr *payoutapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			statusCode = apiErr.StatusCode
		}
	}
	return middleware.JsonResponse(c, statusCode, false, err.Error(), nil)
}
