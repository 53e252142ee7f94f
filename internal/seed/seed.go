package seed

import (
	"time"

	"backoffice-backend/internal/models"
)

// Demo verisi. Kalıcı depolama olmadığı için her açılışta aynı örnek
// katalog ve defterle başlanır.

func MenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "1",
			Name:        "Margherita Pizza",
			Category:    "Pizzas",
			Price:       12.99,
			Description: "Classic pizza with fresh tomatoes, mozzarella and basil",
			Tags:        []string{"vegetarian", "popular"},
			Available:   true,
			Ingredients: []string{"tomato", "mozzarella", "basil"},
		},
		{
			ID:          "2",
			Name:        "Caesar Salad",
			Category:    "Salads",
			Price:       9.99,
			Description: "Crisp romaine lettuce with parmesan and croutons",
			Tags:        []string{"fresh"},
			Available:   true,
			Ingredients: []string{"romaine", "parmesan", "croutons", "caesar dressing"},
		},
		{
			ID:          "3",
			Name:        "Vegan Buddha Bowl",
			Category:    "Bowls",
			Price:       11.99,
			Description: "Quinoa bowl with roasted vegetables and tahini",
			Tags:        []string{"vegan", "healthy"},
			Available:   true,
			Ingredients: []string{"quinoa", "sweet potato", "chickpeas", "tahini"},
		},
		{
			ID:          "4",
			Name:        "Garlic Bread",
			Category:    "Sides",
			Price:       4.99,
			Description: "Toasted baguette with garlic butter and herbs",
			Tags:        []string{"popular"},
			Available:   true,
			Ingredients: []string{"baguette", "garlic", "butter", "parsley"},
		},
		{
			ID:          "5",
			Name:        "Chicken Wings",
			Category:    "Appetizers",
			Price:       14.99,
			Description: "Crispy wings tossed in spicy buffalo sauce",
			Tags:        []string{"spicy"},
			Available:   true,
			Ingredients: []string{"chicken wings", "buffalo sauce", "celery"},
		},
	}
}

func Orders() []models.Order {
	now := time.Now()
	return []models.Order{
		{
			ID:           "ORD-001",
			CustomerName: "John Doe",
			Items: []models.OrderItem{
				{ID: "1", Name: "Margherita Pizza", Quantity: 2, UnitPrice: 12.99, Customizations: []string{"extra cheese"}},
				{ID: "2", Name: "Caesar Salad", Quantity: 1, UnitPrice: 9.99, Customizations: []string{}},
			},
			Status:    models.StatusPreparing,
			Timestamp: now.Add(-15 * time.Minute),
			Total:     35.97,
			Notes:     "Please make pizza extra crispy",
		},
		{
			ID:           "ORD-002",
			CustomerName: "Jane Smith",
			Items: []models.OrderItem{
				{ID: "3", Name: "Vegan Buddha Bowl", Quantity: 1, UnitPrice: 11.99, Customizations: []string{"no tahini"}},
			},
			Status:    models.StatusReady,
			Timestamp: now.Add(-30 * time.Minute),
			Total:     11.99,
			Notes:     "",
		},
		{
			ID:           "ORD-003",
			CustomerName: "Bob Johnson",
			Items: []models.OrderItem{
				{ID: "1", Name: "Margherita Pizza", Quantity: 1, UnitPrice: 12.99, Customizations: []string{}},
				{ID: "4", Name: "Garlic Bread", Quantity: 2, UnitPrice: 4.99, Customizations: []string{}},
			},
			Status:    models.StatusDelivered,
			Timestamp: now.Add(-60 * time.Minute),
			Total:     22.97,
			Notes:     "",
		},
	}
}
