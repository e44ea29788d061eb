package ws

import (
	"log"
	"net/http"
	"sync"

	"plateful/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackHub fans order lifecycle events out to websocket subscribers: a
// customer watching an order, an owner dashboard waiting on validation, or
// anyone following a driver's position during a delivery.
type TrackHub struct {
	orderRooms      map[uint]map[*websocket.Conn]bool
	restaurantRooms map[uint]map[*websocket.Conn]bool
	driverRooms     map[uint]map[*websocket.Conn]bool

	broadcast  chan event
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type roomKind int

const (
	roomOrder roomKind = iota
	roomRestaurant
	roomDriver
)

type subscription struct {
	Conn *websocket.Conn
	Kind roomKind
	ID   uint
}

type event struct {
	Kind    roomKind
	ID      uint
	Payload any
}

type statusEvent struct {
	Type     string             `json:"type"`
	OrderID  uint               `json:"orderId"`
	Status   entity.OrderStatus `json:"status"`
	DriverID *uint              `json:"driverId,omitempty"`
}

type validationEvent struct {
	Type         string `json:"type"`
	RestaurantID uint   `json:"restaurantId"`
	Validated    bool   `json:"validated"`
}

type positionEvent struct {
	Type      string  `json:"type"`
	DriverID  uint    `json:"driverId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewTrackHub() *TrackHub {
	return &TrackHub{
		orderRooms:      make(map[uint]map[*websocket.Conn]bool),
		restaurantRooms: make(map[uint]map[*websocket.Conn]bool),
		driverRooms:     make(map[uint]map[*websocket.Conn]bool),
		broadcast:       make(chan event, 64),
		register:        make(chan subscription),
		unregister:      make(chan subscription),
	}
}

func (h *TrackHub) rooms(k roomKind) map[uint]map[*websocket.Conn]bool {
	switch k {
	case roomRestaurant:
		return h.restaurantRooms
	case roomDriver:
		return h.driverRooms
	default:
		return h.orderRooms
	}
}

// Run loops forever handling register/unregister/broadcast. Start it in its
// own goroutine before serving.
func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			rooms := h.rooms(sub.Kind)
			if rooms[sub.ID] == nil {
				rooms[sub.ID] = make(map[*websocket.Conn]bool)
			}
			rooms[sub.ID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			rooms := h.rooms(sub.Kind)
			if _, ok := rooms[sub.ID][sub.Conn]; ok {
				delete(rooms[sub.ID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			rooms := h.rooms(ev.Kind)
			for conn := range rooms[ev.ID] {
				if err := conn.WriteJSON(ev.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(rooms[ev.ID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ----- services.Notifier -----

func (h *TrackHub) OrderStatusChanged(orderID uint, status entity.OrderStatus, driverID *uint) {
	h.broadcast <- event{Kind: roomOrder, ID: orderID, Payload: statusEvent{
		Type: "order_status", OrderID: orderID, Status: status, DriverID: driverID,
	}}
}

func (h *TrackHub) RestaurantValidated(restaurantID uint, validated bool) {
	h.broadcast <- event{Kind: roomRestaurant, ID: restaurantID, Payload: validationEvent{
		Type: "restaurant_validation", RestaurantID: restaurantID, Validated: validated,
	}}
}

func (h *TrackHub) DriverMoved(driverUserID uint, lat, lng float64) {
	h.broadcast <- event{Kind: roomDriver, ID: driverUserID, Payload: positionEvent{
		Type: "driver_position", DriverID: driverUserID, Latitude: lat, Longitude: lng,
	}}
}

// ----- HTTP handlers -----

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *TrackHub) serve(c *gin.Context, kind roomKind, id uint) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	sub := subscription{Conn: conn, Kind: kind, ID: id}
	h.register <- sub

	// reader only drains control frames; subscribers never send data
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *TrackHub) ServeOrder(c *gin.Context, orderID uint) {
	h.serve(c, roomOrder, orderID)
}

func (h *TrackHub) ServeRestaurant(c *gin.Context, restaurantID uint) {
	h.serve(c, roomRestaurant, restaurantID)
}

func (h *TrackHub) ServeDriver(c *gin.Context, driverUserID uint) {
	h.serve(c, roomDriver, driverUserID)
}
