package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/restoflow/restaurant-manager/models"
)

// Event types
const (
	EventTableCreate = "table_create"
	EventTableUpdate = "table_update"
	EventTableDelete = "table_delete"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung koneksi dashboard admin/staff per company; event meja hanya
// disiarkan ke client dari company yang sama.
type Hub struct {
	clients map[*websocket.Conn]uint // conn -> companyID
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]uint),
}

// RegisterClient menambahkan koneksi ke hub.
func RegisterClient(conn *websocket.Conn, companyID uint) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = companyID
}

// UnregisterClient melepaskan koneksi dan menutupnya.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastTableCreate -> meja baru dibuat
func BroadcastTableCreate(table models.Table) {
	broadcast(table.CompanyID, Message{Event: EventTableCreate, Data: table})
}

// BroadcastTableUpdate -> status/field meja berubah
func BroadcastTableUpdate(table models.Table) {
	broadcast(table.CompanyID, Message{Event: EventTableUpdate, Data: table})
}

// BroadcastTableDelete -> meja di-soft-delete
func BroadcastTableDelete(table models.Table) {
	broadcast(table.CompanyID, Message{
		Event: EventTableDelete,
		Data:  map[string]interface{}{"table_id": table.ID},
	})
}

func broadcast(companyID uint, msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn, connCompany := range hub.clients {
		if connCompany != companyID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
