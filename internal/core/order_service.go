package core

import (
	"context"

	"go.uber.org/zap"

	"pitlane-backend-go/internal/db"
	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/pricing"
)

// orderService implements OrderService.
type orderService struct {
	orders db.OrderRepository
	carts  db.CartRepository
	logger *zap.Logger
}

// NewOrderService creates an OrderService.
func NewOrderService(orders db.OrderRepository, carts db.CartRepository, logger *zap.Logger) OrderService {
	return &orderService{orders: orders, carts: carts, logger: logger}
}

// Create places an order from the submitted cart snapshot. Totals are
// always recomputed server-side from the item prices and quantities, so
// a client cannot submit its own amounts. The user's cart is cleared
// after the order is stored; a failure there is logged but does not fail
// the order.
func (s *orderService) Create(ctx context.Context, userID string, req models.CreateOrderRequest) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(req.Items))
	priced := make([]pricing.LineItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Image:     line.Image,
		})
		priced = append(priced, pricing.LineItem{Price: line.Price, Quantity: line.Quantity})
	}
	totals := pricing.Calculate(priced)

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "stripe"
	}

	order := &models.Order{
		UserID: userID,
		Items:  items,
		ShippingAddress: models.ShippingAddress{
			Street:     req.ShippingAddress.Street,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod: paymentMethod,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Shipping:      totals.Shipping,
		TotalAmount:   totals.Total,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}
	if _, err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after order",
			zap.String("userId", userID),
			zap.String("orderId", order.ID),
			zap.Error(err))
	}

	return order, nil
}

// Get returns one order. Regular users can only read their own orders;
// admins can read any.
func (s *orderService) Get(ctx context.Context, userID string, isAdmin bool, orderID string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListForUser(ctx context.Context, userID string) ([]*models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *orderService) ListAll(ctx context.Context) ([]*models.Order, error) {
	return s.orders.ListAll(ctx)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}
