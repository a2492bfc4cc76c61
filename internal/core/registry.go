package core

import "sync"

// Registry is the single source of truth for which connection currently
// represents which user. It is owned by the hub rather than living as
// package-level state.
type Registry struct {
	mu    sync.RWMutex
	users map[string]*Client
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*Client)}
}

// Register inserts or overwrites the mapping for userID. Last writer wins:
// a handle previously registered under the same identifier becomes
// unreachable via Lookup but is neither closed nor notified.
func (r *Registry) Register(userID string, client *Client) {
	r.mu.Lock()
	r.users[userID] = client
	r.mu.Unlock()
}

// Lookup returns the connection registered for userID, if any. A false
// second return means the user is offline or unknown.
func (r *Registry) Lookup(userID string) (*Client, bool) {
	r.mu.RLock()
	client, ok := r.users[userID]
	r.mu.RUnlock()
	return client, ok
}

// Deregister removes the mapping for userID. No-op when absent. Removal is
// keyed by identifier only: a displaced connection that disconnects late
// removes whatever mapping currently holds its last identifier.
func (r *Registry) Deregister(userID string) {
	r.mu.Lock()
	delete(r.users, userID)
	r.mu.Unlock()
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.users)
	r.mu.RUnlock()
	return n
}
