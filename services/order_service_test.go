package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/models"
	"github.com/DazJ14/restaurant-api/services"
)

func TestPlaceOrder(t *testing.T) {
	db := setupTestDB(t)
	pub := &capturePublisher{}
	tables := seedTables(t, db, 1)
	soda := seedProduct(t, db, "Refresco de Cola", 35)

	tab, err := services.NewTabService(db, pub).OpenTab(tables[0].ID)
	assert.NoError(t, err)

	svc := services.NewOrderService(db, pub)
	orders, err := svc.PlaceOrder(tab.ID, []services.OrderItemInput{
		{ProductID: soda.ID, Quantity: 2, GuestName: "Alice"},
	})
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, models.OrderPending, orders[0].Status)
	assert.Equal(t, "Alice", orders[0].GuestName)

	// Aparece en la fila de cocina
	pending, err := svc.ListPending()
	assert.NoError(t, err)
	if assert.Len(t, pending, 1) {
		assert.Equal(t, orders[0].ID, pending[0].OrderID)
		assert.Equal(t, "Refresco de Cola", pending[0].Product)
		assert.Equal(t, 1, pending[0].TableNumber)
	}

	// Un solo evento de cocina con el lote completo
	last := pub.last()
	if assert.NotNil(t, last) {
		assert.Equal(t, events.EventNewKitchenOrder, last.Event)
		data := last.Data.(map[string]interface{})
		assert.Equal(t, "¡Nueva orden recibida!", data["mensaje"])
		assert.Equal(t, 1, data["mesa"])
	}
}

func TestPlaceOrderInvalidProductRollsBack(t *testing.T) {
	db := setupTestDB(t)
	pub := &capturePublisher{}
	tables := seedTables(t, db, 1)
	soda := seedProduct(t, db, "Refresco de Cola", 35)

	tab, err := services.NewTabService(db, pub).OpenTab(tables[0].ID)
	assert.NoError(t, err)

	svc := services.NewOrderService(db, pub)
	_, err = svc.PlaceOrder(tab.ID, []services.OrderItemInput{
		{ProductID: soda.ID, Quantity: 1, GuestName: "Alice"},
		{ProductID: 999, Quantity: 1, GuestName: "Bob"},
	})

	var validationErr *services.ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Contains(t, validationErr.Error(), "999")
	}

	// Ni siquiera el primer platillo válido quedó registrado
	var count int64
	db.Model(&models.Order{}).Where("cuenta_id = ?", tab.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPlaceOrderUnavailableProduct(t *testing.T) {
	db := setupTestDB(t)
	pub := &capturePublisher{}
	tables := seedTables(t, db, 1)
	soda := seedProduct(t, db, "Refresco de Cola", 35)
	assert.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", soda.ID).
		Update("disponible", false).Error)

	tab, err := services.NewTabService(db, pub).OpenTab(tables[0].ID)
	assert.NoError(t, err)

	_, err = services.NewOrderService(db, pub).PlaceOrder(tab.ID, []services.OrderItemInput{
		{ProductID: soda.ID, Quantity: 1, GuestName: "Alice"},
	})
	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestPlaceOrderClosedTab(t *testing.T) {
	db := setupTestDB(t)
	pub := &capturePublisher{}
	tables := seedTables(t, db, 1)
	soda := seedProduct(t, db, "Refresco de Cola", 35)

	tab, err := services.NewTabService(db, pub).OpenTab(tables[0].ID)
	assert.NoError(t, err)
	err = services.NewPaymentService(db, pub).SettleTab(tab.ID, []services.PaymentInput{
		{GuestName: "Alice", Amount: 35, Method: models.PaymentCash},
	})
	assert.NoError(t, err)

	_, err = services.NewOrderService(db, pub).PlaceOrder(tab.ID, []services.OrderItemInput{
		{ProductID: soda.ID, Quantity: 1, GuestName: "Alice"},
	})
	var conflictErr *services.ConflictError
	assert.ErrorAs(t, err, &conflictErr)

	// Cuenta inexistente -> no encontrada
	_, err = services.NewOrderService(db, pub).PlaceOrder(9999, []services.OrderItemInput{
		{ProductID: soda.ID, Quantity: 1, GuestName: "Alice"},
	})
	var notFoundErr *services.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestListPendingIsFIFO(t *testing.T) {
	db := setupTestDB(t)
	pub := &capturePublisher{}
	tables := seedTables(t, db, 1)
	soda := seedProduct(t, db, "Refresco de Cola", 35)

	tab, err := services.NewTabService(db, pub).OpenTab(tables[0].ID)
	assert.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	states := []string{models.OrderPending, models.OrderPreparing, models.OrderDelivered}
	for i, state := range states {
		mustCreate(t, db, &models.Order{
			TabID:     tab.ID,
			ProductID: soda.ID,
			Quantity:  1,
			GuestName: "Alice",
			Status:    state,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	pending, err := services.NewOrderService(db, pub).ListPending()
	assert.NoError(t, err)

	// Los entregados no aparecen; el resto del más viejo al más nuevo
	if assert.Len(t, pending, 2) {
		assert.Equal(t, models.OrderPending, pending[0].Status)
		assert.Equal(t, models.OrderPreparing, pending[1].Status)
		assert.True(t, pending[0].CreatedAt.Before(pending[1].CreatedAt))
	}
}

func TestAdvanceState(t *testing.T) {
	db := setupTestDB(t)
	pub := &capturePublisher{}
	tables := seedTables(t, db, 1)
	soda := seedProduct(t, db, "Refresco de Cola", 35)

	tab, err := services.NewTabService(db, pub).OpenTab(tables[0].ID)
	assert.NoError(t, err)

	svc := services.NewOrderService(db, pub)
	orders, err := svc.PlaceOrder(tab.ID, []services.OrderItemInput{
		{ProductID: soda.ID, Quantity: 2, GuestName: "Alice"},
	})
	assert.NoError(t, err)
	orderID := orders[0].ID

	updated, err := svc.AdvanceState(orderID, models.OrderPreparing)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderPreparing, updated.Status)

	updated, err = svc.AdvanceState(orderID, models.OrderReady)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderReady, updated.Status)

	// Al quedar listo se avisa al mesero con mesa y comensal
	last := pub.last()
	if assert.NotNil(t, last) {
		assert.Equal(t, events.EventOrderReady, last.Event)
		data := last.Data.(map[string]interface{})
		assert.Equal(t, 1, data["mesa"])
		assert.Equal(t, "Alice", data["cliente"])
		assert.Equal(t, orderID, data["pedido_id"])
	}
}

func TestAdvanceStateRejectsRegression(t *testing.T) {
	db := setupTestDB(t)
	pub := &capturePublisher{}
	tables := seedTables(t, db, 1)
	soda := seedProduct(t, db, "Refresco de Cola", 35)

	tab, err := services.NewTabService(db, pub).OpenTab(tables[0].ID)
	assert.NoError(t, err)

	svc := services.NewOrderService(db, pub)
	orders, err := svc.PlaceOrder(tab.ID, []services.OrderItemInput{
		{ProductID: soda.ID, Quantity: 1, GuestName: "Alice"},
	})
	assert.NoError(t, err)
	orderID := orders[0].ID

	_, err = svc.AdvanceState(orderID, models.OrderReady)
	assert.NoError(t, err)

	var validationErr *services.ValidationError

	// Retroceso listo -> preparando
	_, err = svc.AdvanceState(orderID, models.OrderPreparing)
	assert.ErrorAs(t, err, &validationErr)

	// Estado fuera del vocabulario de cocina
	_, err = svc.AdvanceState(orderID, "pendiente")
	assert.ErrorAs(t, err, &validationErr)

	var order models.Order
	assert.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, models.OrderReady, order.Status)
}

func TestAdvanceStateUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewOrderService(db, &capturePublisher{})

	_, err := svc.AdvanceState(12345, models.OrderPreparing)
	var notFoundErr *services.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
