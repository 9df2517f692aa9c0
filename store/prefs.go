package store

import "sync"

// Prefs is the client-only preference store behind the like and cart
// toggles. Nothing here reaches the backend: toggles are synchronous,
// optimistic and forgotten on restart. Absence of a key means false.
// A backend-backed implementation can replace this behind the same
// interface.
type Prefs struct {
	mu    sync.RWMutex
	likes map[string]bool
	cart  map[string]bool
}

func NewPrefs() *Prefs {
	return &Prefs{likes: map[string]bool{}, cart: map[string]bool{}}
}

// ToggleLike flips the like state for a product and returns the new state.
func (p *Prefs) ToggleLike(productID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := !p.likes[productID]
	if next {
		p.likes[productID] = true
	} else {
		delete(p.likes, productID)
	}
	return next
}

func (p *Prefs) IsLiked(productID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.likes[productID]
}

// ToggleCart flips the cart state for a product and returns the new state.
func (p *Prefs) ToggleCart(productID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := !p.cart[productID]
	if next {
		p.cart[productID] = true
	} else {
		delete(p.cart, productID)
	}
	return next
}

func (p *Prefs) InCart(productID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cart[productID]
}
