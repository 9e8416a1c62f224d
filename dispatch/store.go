package dispatch

import (
	"sync"
)

// Operation groups tracked independently. One in-flight call never
// affects another group's displayed state.
const (
	GroupBeneficiaryTypes      = "beneficiaryTypes"
	GroupPayoutReasons         = "payoutReasons"
	GroupAddBeneficiary        = "addBeneficiary"
	GroupBeneficiaryDetails    = "beneficiaryDetails"
	GroupUpdateBeneficiary     = "updateBeneficiary"
	GroupBeneficiaryList       = "beneficiaryList"
	GroupSendMoney             = "sendMoney"
	GroupPayoutStatus          = "payoutStatus"
	GroupTransactionDetails    = "transactionDetails"
	GroupAllPayoutTransactions = "allPayoutTransactions"
	GroupBulkUpload            = "bulkUpload"
	GroupBulkPaymentIDs        = "bulkPaymentIds"
	GroupBulkPaymentDetails    = "bulkPaymentDetails"
	GroupBulkDecision          = "bulkDecision"
	GroupUserDetails           = "userDetails"
)

// State is the lifecycle record of one operation group: at most one of
// loading=true and data!=nil is meaningful at a time.
type State struct {
	Loading bool        `json:"loading"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

// Store holds the latest result and loading/error flags per group. It is
// only ever mutated through the lifecycle transitions below.
type Store struct {
	mu     sync.RWMutex
	groups map[string]State
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{groups: make(map[string]State)}
}

// pending clears prior data and error and marks the group loading.
func (s *Store) pending(group string) {
	s.mu.Lock()
	s.groups[group] = State{Loading: true}
	s.mu.Unlock()
}

// fulfill stores the payload and clears loading.
func (s *Store) fulfill(group string, data interface{}) {
	s.mu.Lock()
	s.groups[group] = State{Data: data}
	s.mu.Unlock()
}

// reject stores the error message and clears loading.
func (s *Store) reject(group, message string) {
	s.mu.Lock()
	s.groups[group] = State{Error: message}
	s.mu.Unlock()
}

// State returns the current record for group.
func (s *Store) State(group string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groups[group]
}

// Reset clears the group back to its initial record.
func (s *Store) Reset(group string) {
	s.mu.Lock()
	delete(s.groups, group)
	s.mu.Unlock()
}

// Snapshot copies the whole store for rendering.
func (s *Store) Snapshot() map[string]State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]State, len(s.groups))
	for group, state := range s.groups {
		out[group] = state
	}
	return out
}
