package utils

import (
	"log"
	"strings"
	"sync"
	"time"

	"paydash/config"
	"paydash/database"
	"paydash/models"
	"paydash/payoutapi"

	"github.com/robfig/cron/v3"
)

var (
	pollerMu     sync.Mutex
	pollerClient *payoutapi.Client
)

// SetPollerClient hands the poller an authenticated backend client.
// Called from the login flow; polls are skipped while no login exists.
func SetPollerClient(client *payoutapi.Client) {
	pollerMu.Lock()
	pollerClient = client
	pollerMu.Unlock()
}

func currentPollerClient() *payoutapi.Client {
	pollerMu.Lock()
	defer pollerMu.Unlock()
	return pollerClient
}

// InitializeStatusPoller starts the cron job that re-checks locally
// mirrored payouts still in PENDING against the backend.
func InitializeStatusPoller() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.StatusPollSpec, PollPendingOrders)
	if err != nil {
		log.Printf("Failed to schedule status poller: %v", err)
		return c
	}

	c.Start()
	log.Printf("Status poller scheduled: %s", config.AppConfig.StatusPollSpec)
	return c
}

// PollPendingOrders walks PENDING mirror rows and refreshes them from
// the check-status endpoint.
func PollPendingOrders() {
	client := currentPollerClient()
	if client == nil || !client.Session().Authenticated() {
		return
	}

	db := database.Database.Db
	if db == nil {
		return
	}

	var orders []models.PayoutOrder
	if err := db.Where("status = ? AND is_deleted = false", "PENDING").
		Limit(50).Find(&orders).Error; err != nil {
		log.Printf("Status poller query failed: %v", err)
		return
	}

	for i := range orders {
		order := &orders[i]

		status, statusText, err := client.CheckStatus(order.OrderID)
		if err != nil {
			// A 401 here clears the session; the next tick will skip.
			log.Printf("Status check failed for %s: %v", order.OrderID, err)
			if payoutapi.KindOf(err) == payoutapi.KindAuthExpired {
				return
			}
			continue
		}

		now := time.Now()
		order.LastCheckedAt = &now
		if statusText != "" {
			order.Status = strings.ToUpper(statusText)
		}
		order.OpeningBalance = status.OpeningBalance
		order.LockedAmount = status.LockedAmount
		order.ChargedAmount = status.ChargedAmount

		if err := db.Save(order).Error; err != nil {
			log.Printf("Failed to update order %s: %v", order.OrderID, err)
		}
	}
}
