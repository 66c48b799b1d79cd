package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Nombres de evento. Se conservan tal cual los espera el frontend.
const (
	EventTablesChanged   = "mesas_actualizadas"
	EventNewKitchenOrder = "nueva_orden_cocina"
	EventOrderReady      = "pedido_listo_para_entregar"
)

// Acciones del evento mesas_actualizadas
const (
	ActionMerge        = "fusion_y_ocupacion"
	ActionOccupySingle = "ocupacion_individual"
	ActionRelease      = "liberacion"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Publisher es lo único que conocen los servicios: publicar un evento
// después de confirmar la transacción. La entrega es best-effort, sin
// acuse ni reenvío; el estado siempre se puede recuperar consultando.
type Publisher interface {
	Publish(event string, data interface{})
}

// Hub mantiene las conexiones de los observadores (meseros, cocina,
// recepción) y les reenvía cada evento publicado.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Register -> agrega una conexión al hub
func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = struct{}{}
}

// Unregister -> retira y cierra una conexión
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Publish -> envía el evento a todos los clientes conectados.
// Un cliente que falla se salta; no hay reintentos.
func (h *Hub) Publish(event string, data interface{}) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	raw, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		log.Printf("Error serializando evento %s: %v", event, err)
		return
	}

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			log.Printf("Error enviando evento %s a un cliente: %v", event, err)
			continue
		}
	}
}
