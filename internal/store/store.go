// Package store owns the café's domain state: menu, reservations, blog
// posts, cart, orders, and the two singleton site records. There is one
// store per process, constructed at startup from persisted slots and mutated
// only through its methods. Every mutation writes through to storage and
// synchronously notifies subscribers.
package store

import (
	"slices"
	"sync"

	"urban-bites/internal/model"
	"urban-bites/internal/storage"

	"github.com/rs/zerolog"
)

// Collection names one of the store-owned data sets. The name doubles as the
// persistence slot name.
type Collection string

const (
	CollectionBusinessInfo   Collection = "businessInfo"
	CollectionHomepageConfig Collection = "homepageConfig"
	CollectionMenuItems      Collection = "menuItems"
	CollectionReservations   Collection = "reservations"
	CollectionBlogPosts      Collection = "blogPosts"
	CollectionCart           Collection = "cart"
	CollectionOrders         Collection = "orders"
)

// Store holds all domain collections behind a single mutex. One writer at a
// time; readers always observe a complete snapshot, never a partial update.
type Store struct {
	mu     sync.Mutex
	slots  *storage.Slots
	logger zerolog.Logger

	businessInfo   model.BusinessInfo
	homepageConfig model.HomepageConfig
	menuItems      []model.MenuItem
	reservations   []model.Reservation
	testimonials   []model.Testimonial
	blogPosts      []model.BlogPost
	cart           []model.CartItem
	orders         []model.Order

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func(Collection)
}

// New constructs the store, loading each collection from its slot and
// falling back to the built-in seed data. Testimonials are seed-only and
// never persisted.
func New(slots *storage.Slots, logger zerolog.Logger) *Store {
	s := &Store{
		slots:  slots,
		logger: logger.With().Str("component", "store").Logger(),
		subs:   make(map[int]func(Collection)),
	}
	s.loadAll()
	return s
}

func (s *Store) loadAll() {
	s.businessInfo = storage.Load(s.slots, string(CollectionBusinessInfo), defaultBusinessInfo())
	s.homepageConfig = storage.Load(s.slots, string(CollectionHomepageConfig), defaultHomepageConfig())
	s.menuItems = storage.Load(s.slots, string(CollectionMenuItems), defaultMenu())
	s.reservations = storage.Load(s.slots, string(CollectionReservations), []model.Reservation{})
	s.testimonials = defaultTestimonials()
	s.blogPosts = storage.Load(s.slots, string(CollectionBlogPosts), defaultBlogPosts())
	s.cart = storage.Load(s.slots, string(CollectionCart), []model.CartItem{})
	s.orders = storage.Load(s.slots, string(CollectionOrders), []model.Order{})
}

// Subscribe registers fn to be called synchronously after every mutation,
// with the name of the collection that changed. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Collection)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(cs ...Collection) {
	s.subMu.Lock()
	fns := make([]func(Collection), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, c := range cs {
		for _, fn := range fns {
			fn(c)
		}
	}
}

// Snapshot getters. Sequences are returned as copies so callers can never
// mutate store state through a snapshot.

func (s *Store) BusinessInfo() model.BusinessInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.businessInfo
}

func (s *Store) HomepageConfig() model.HomepageConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.homepageConfig
}

func (s *Store) MenuItems() []model.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.menuItems)
}

func (s *Store) Reservations() []model.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reservations)
}

func (s *Store) Testimonials() []model.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.testimonials)
}

func (s *Store) BlogPosts() []model.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.blogPosts)
}

func (s *Store) Cart() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.cart)
}

func (s *Store) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := slices.Clone(s.orders)
	for i := range orders {
		orders[i].Items = slices.Clone(orders[i].Items)
	}
	return orders
}

// UpdateBusinessInfo replaces the business info record wholesale. The caller
// is trusted; no validation happens here.
func (s *Store) UpdateBusinessInfo(info model.BusinessInfo) {
	s.mu.Lock()
	s.businessInfo = info
	storage.Save(s.slots, string(CollectionBusinessInfo), s.businessInfo)
	s.mu.Unlock()
	s.notify(CollectionBusinessInfo)
}

// UpdateHomepageConfig replaces the homepage config record wholesale.
func (s *Store) UpdateHomepageConfig(config model.HomepageConfig) {
	s.mu.Lock()
	s.homepageConfig = config
	storage.Save(s.slots, string(CollectionHomepageConfig), s.homepageConfig)
	s.mu.Unlock()
	s.notify(CollectionHomepageConfig)
}

// AddMenuItem appends item to the menu. The caller supplies the id and is
// responsible for its uniqueness; the store does not deduplicate.
func (s *Store) AddMenuItem(item model.MenuItem) {
	s.mu.Lock()
	s.menuItems = append(s.menuItems, item)
	storage.Save(s.slots, string(CollectionMenuItems), s.menuItems)
	s.mu.Unlock()
	s.notify(CollectionMenuItems)
}

// UpdateMenuItem replaces the item whose id matches, keeping its position.
// Silent no-op when no item matches.
func (s *Store) UpdateMenuItem(item model.MenuItem) {
	s.mu.Lock()
	for i := range s.menuItems {
		if s.menuItems[i].ID == item.ID {
			s.menuItems[i] = item
			break
		}
	}
	storage.Save(s.slots, string(CollectionMenuItems), s.menuItems)
	s.mu.Unlock()
	s.notify(CollectionMenuItems)
}

// DeleteMenuItem removes the matching item. Silent no-op when absent.
func (s *Store) DeleteMenuItem(id string) {
	s.mu.Lock()
	s.menuItems = slices.DeleteFunc(s.menuItems, func(m model.MenuItem) bool {
		return m.ID == id
	})
	storage.Save(s.slots, string(CollectionMenuItems), s.menuItems)
	s.mu.Unlock()
	s.notify(CollectionMenuItems)
}

// AddReservation prepends the reservation; newest-first ordering is what the
// admin screen displays.
func (s *Store) AddReservation(reservation model.Reservation) {
	s.mu.Lock()
	s.reservations = append([]model.Reservation{reservation}, s.reservations...)
	storage.Save(s.slots, string(CollectionReservations), s.reservations)
	s.mu.Unlock()
	s.notify(CollectionReservations)
}

// UpdateReservationStatus replaces only the status field of the matching
// reservation. Silent no-op when absent.
func (s *Store) UpdateReservationStatus(id string, status model.ReservationStatus) {
	s.mu.Lock()
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations[i].Status = status
			break
		}
	}
	storage.Save(s.slots, string(CollectionReservations), s.reservations)
	s.mu.Unlock()
	s.notify(CollectionReservations)
}

// DeleteReservation removes the matching reservation. Silent no-op when
// absent.
func (s *Store) DeleteReservation(id string) {
	s.mu.Lock()
	s.reservations = slices.DeleteFunc(s.reservations, func(r model.Reservation) bool {
		return r.ID == id
	})
	storage.Save(s.slots, string(CollectionReservations), s.reservations)
	s.mu.Unlock()
	s.notify(CollectionReservations)
}

// AddBlogPost prepends the post, newest first.
func (s *Store) AddBlogPost(post model.BlogPost) {
	s.mu.Lock()
	s.blogPosts = append([]model.BlogPost{post}, s.blogPosts...)
	storage.Save(s.slots, string(CollectionBlogPosts), s.blogPosts)
	s.mu.Unlock()
	s.notify(CollectionBlogPosts)
}

// UpdateBlogPost replaces the matching post in place. Silent no-op when
// absent.
func (s *Store) UpdateBlogPost(post model.BlogPost) {
	s.mu.Lock()
	for i := range s.blogPosts {
		if s.blogPosts[i].ID == post.ID {
			s.blogPosts[i] = post
			break
		}
	}
	storage.Save(s.slots, string(CollectionBlogPosts), s.blogPosts)
	s.mu.Unlock()
	s.notify(CollectionBlogPosts)
}

// DeleteBlogPost removes the matching post. Silent no-op when absent.
func (s *Store) DeleteBlogPost(id string) {
	s.mu.Lock()
	s.blogPosts = slices.DeleteFunc(s.blogPosts, func(p model.BlogPost) bool {
		return p.ID == id
	})
	storage.Save(s.slots, string(CollectionBlogPosts), s.blogPosts)
	s.mu.Unlock()
	s.notify(CollectionBlogPosts)
}

// AddToCart adds one unit of item to the cart. An existing entry with the
// same id has its quantity incremented; otherwise a new entry with quantity 1
// is appended. Cart ordering is insertion order.
func (s *Store) AddToCart(item model.MenuItem) {
	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].ID == item.ID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, model.CartItem{MenuItem: item, Quantity: 1})
	}
	storage.Save(s.slots, string(CollectionCart), s.cart)
	s.mu.Unlock()
	s.notify(CollectionCart)
}

// RemoveFromCart drops the matching entry entirely, whatever its quantity.
func (s *Store) RemoveFromCart(itemID string) {
	s.mu.Lock()
	s.cart = slices.DeleteFunc(s.cart, func(c model.CartItem) bool {
		return c.ID == itemID
	})
	storage.Save(s.slots, string(CollectionCart), s.cart)
	s.mu.Unlock()
	s.notify(CollectionCart)
}

// UpdateQuantity adds delta to the matching entry's quantity, clamped at 0.
// An entry that reaches 0 is removed as part of the same operation; a
// quantity of 0 is never persisted.
func (s *Store) UpdateQuantity(itemID string, delta int) {
	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			s.cart[i].Quantity = max(0, s.cart[i].Quantity+delta)
			break
		}
	}
	s.cart = slices.DeleteFunc(s.cart, func(c model.CartItem) bool {
		return c.Quantity <= 0
	})
	storage.Save(s.slots, string(CollectionCart), s.cart)
	s.mu.Unlock()
	s.notify(CollectionCart)
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.clearCartLocked()
	s.mu.Unlock()
	s.notify(CollectionCart)
}

func (s *Store) clearCartLocked() {
	s.cart = []model.CartItem{}
	storage.Save(s.slots, string(CollectionCart), s.cart)
}

// PlaceOrder prepends order, newest first, and clears the cart as part of
// the same operation. The caller constructs order.Items as a snapshot of the
// current cart and order.Total as the precomputed sum; the store does not
// recompute or validate either.
func (s *Store) PlaceOrder(order model.Order) {
	s.mu.Lock()
	s.orders = append([]model.Order{order}, s.orders...)
	storage.Save(s.slots, string(CollectionOrders), s.orders)
	s.clearCartLocked()
	s.mu.Unlock()
	s.notify(CollectionOrders, CollectionCart)
}

// PlaceOrderFromCart hands build a snapshot of the current cart and records
// the order it returns, clearing the cart, all within one critical section;
// no cart mutation can land between the snapshot and the clear. The order
// construction stays with the caller, same as PlaceOrder. build must not
// call back into the store. A build error leaves the store untouched.
func (s *Store) PlaceOrderFromCart(build func(items []model.CartItem) (model.Order, error)) (model.Order, error) {
	s.mu.Lock()
	order, err := build(slices.Clone(s.cart))
	if err != nil {
		s.mu.Unlock()
		return model.Order{}, err
	}
	s.orders = append([]model.Order{order}, s.orders...)
	storage.Save(s.slots, string(CollectionOrders), s.orders)
	s.clearCartLocked()
	s.mu.Unlock()
	s.notify(CollectionOrders, CollectionCart)
	return order, nil
}

// UpdateOrderStatus replaces only the status field of the matching order.
// Silent no-op when absent.
func (s *Store) UpdateOrderStatus(id string, status model.OrderStatus) {
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			break
		}
	}
	storage.Save(s.slots, string(CollectionOrders), s.orders)
	s.mu.Unlock()
	s.notify(CollectionOrders)
}

// ResetAll erases every persisted slot and reinitializes all collections
// from the built-in seeds. The irreversible-action confirmation belongs to
// the caller; once invoked the reset is unconditional.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	if err := s.slots.Clear(); err != nil {
		s.mu.Unlock()
		s.logger.Error().Err(err).Msg("failed to clear persisted slots")
		return err
	}
	s.loadAll()
	s.mu.Unlock()

	s.logger.Info().Msg("all data reset to defaults")
	s.notify(
		CollectionBusinessInfo,
		CollectionHomepageConfig,
		CollectionMenuItems,
		CollectionReservations,
		CollectionBlogPosts,
		CollectionCart,
		CollectionOrders,
	)
	return nil
}
