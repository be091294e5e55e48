package repositories

import (
	"context"
	"errors"
	"time"

	"pharmacy-shop/config"
	"pharmacy-shop/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order and its items in one transaction and
// decrements product stock. The caller clears the in-memory cart only
// after this returns without error.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, total_amount, status, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.UserID, order.TotalAmount, order.Status, order.Notes, now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.Price,
		).Scan(&item.ID)
		if err != nil {
			return err
		}

		if _, err = tx.Exec(ctx,
			`UPDATE products SET stock = GREATEST(stock - $1, 0), updated_at = $2 WHERE id = $3`,
			item.Quantity, now, item.ProductID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindByUser(userID, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, order_number, user_id, total_amount, status, notes, created_at, updated_at
		 FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := r.scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) FindAll(page, limit int, status string) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	where := ""
	countArgs := []interface{}{}
	if status != "" && status != "All" {
		where = " WHERE status = $1"
		countArgs = append(countArgs, status)
	}

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, order_number, user_id, total_amount, status, notes, created_at, updated_at FROM orders` + where
	args := append(countArgs, limit, offset)
	if where == "" {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	} else {
		query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	}

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := r.scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) FindByID(id int) (*models.Order, error) {
	order := &models.Order{}
	err := config.DB.QueryRow(context.Background(),
		`SELECT id, order_number, user_id, total_amount, status, notes, created_at, updated_at
		 FROM orders WHERE id = $1`, id).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.TotalAmount,
		&order.Status, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price
		 FROM order_items oi JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1 ORDER BY oi.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return order, nil
}

func (r *OrderRepository) UpdateStatus(id int, status string) error {
	result, err := config.DB.Exec(context.Background(),
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

type DashboardStats struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalUsers    int     `json:"total_users"`
	TotalProducts int     `json:"total_products"`
	PendingOrders int     `json:"pending_orders"`
}

func (r *OrderRepository) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	err := config.DB.QueryRow(context.Background(), `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status != 'cancelled'),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products WHERE is_active = true),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending')
	`).Scan(&stats.TotalOrders, &stats.TotalRevenue, &stats.TotalUsers, &stats.TotalProducts, &stats.PendingOrders)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *OrderRepository) scanOrders(rows interface {
	Next() bool
	Scan(...any) error
}) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.UserID, &order.TotalAmount,
			&order.Status, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
