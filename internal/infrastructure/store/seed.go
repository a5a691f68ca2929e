package store

import (
	"time"

	"github.com/foodbazar/retail-api/internal/domain/entity"
	"github.com/foodbazar/retail-api/internal/domain/enum"
)

// The built-in demo dataset. Customer counters are consistent with the seeded
// transactions: totalPurchases/totalSpent equal the count and sum of each
// customer's transactions below.

func seedCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "C001", Name: "Aarav Sharma", Email: "aarav.sharma@example.com", Phone: "+91 98100 23451", Address: "12 MG Road, Bengaluru", JoinDate: "2024-01-15", TotalPurchases: 2, TotalSpent: 32.55},
		{ID: "C002", Name: "Meera Patel", Email: "meera.patel@example.com", Phone: "+91 98200 45632", Address: "8 Linking Road, Mumbai", JoinDate: "2024-02-03", TotalPurchases: 2, TotalSpent: 13.45},
		{ID: "C003", Name: "Rohan Gupta", Email: "rohan.gupta@example.com", Phone: "+91 99870 11209", Address: "45 Park Street, Kolkata", JoinDate: "2024-03-21", TotalPurchases: 1, TotalSpent: 12.90},
		{ID: "C004", Name: "Priya Nair", Email: "priya.nair@example.com", Phone: "+91 98470 67320", Address: "23 Marine Drive, Kochi", JoinDate: "2024-04-09", TotalPurchases: 0, TotalSpent: 0},
		{ID: "C005", Name: "Vikram Rao", Email: "vikram.rao@example.com", Phone: "+91 98490 88754", Address: "67 Jubilee Hills, Hyderabad", JoinDate: "2024-05-27", TotalPurchases: 0, TotalSpent: 0},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: "P001", Name: "Whole Milk", Category: "Dairy", Price: 3.50, Stock: 120, Unit: "gallon", Supplier: "Green Valley Farms", Description: "Fresh whole milk, pasteurized"},
		{ID: "P002", Name: "Cheddar Cheese", Category: "Dairy", Price: 6.25, Stock: 80, Unit: "lb", Supplier: "Green Valley Farms", Description: "Aged cheddar, medium sharp"},
		{ID: "P003", Name: "Bananas", Category: "Fruits", Price: 0.60, Stock: 300, Unit: "lb", Supplier: "Tropical Imports", Description: "Cavendish bananas"},
		{ID: "P004", Name: "Apples", Category: "Fruits", Price: 1.80, Stock: 220, Unit: "lb", Supplier: "Orchard Fresh", Description: "Royal Gala apples"},
		{ID: "P005", Name: "Basmati Rice", Category: "Grains", Price: 12.00, Stock: 90, Unit: "bag", Supplier: "Sunrise Traders", Description: "5 kg bag, extra long grain"},
		{ID: "P006", Name: "Whole Wheat Bread", Category: "Bakery", Price: 2.75, Stock: 60, Unit: "loaf", Supplier: "Daily Breads", Description: "Baked fresh every morning"},
		{ID: "P007", Name: "Chicken Breast", Category: "Meat", Price: 5.40, Stock: 75, Unit: "lb", Supplier: "Prairie Poultry", Description: "Boneless, skinless"},
		{ID: "P008", Name: "Tomatoes", Category: "Vegetables", Price: 2.20, Stock: 150, Unit: "lb", Supplier: "Orchard Fresh", Description: "Vine-ripened tomatoes"},
		{ID: "P009", Name: "Spinach", Category: "Vegetables", Price: 3.10, Stock: 45, Unit: "bunch", Supplier: "Green Valley Farms", Description: "Baby spinach, washed"},
		{ID: "P010", Name: "Eggs", Category: "Dairy", Price: 4.20, Stock: 200, Unit: "dozen", Supplier: "Prairie Poultry", Description: "Free-range, grade A"},
	}
}

func seedTransactions() []entity.Transaction {
	return []entity.Transaction{
		{
			ID: "T001", CustomerID: "C001", CustomerName: "Aarav Sharma",
			Date: time.Date(2024, 6, 3, 10, 15, 0, 0, time.UTC),
			Items: []entity.TransactionItem{
				{ProductID: "P001", ProductName: "Whole Milk", Quantity: 2, Price: 3.50, Subtotal: 7.00},
				{ProductID: "P006", ProductName: "Whole Wheat Bread", Quantity: 1, Price: 2.75, Subtotal: 2.75},
			},
			TotalAmount: 9.75, PaymentMethod: enum.PaymentCash, Status: enum.StatusCompleted,
		},
		{
			ID: "T002", CustomerID: "C002", CustomerName: "Meera Patel",
			Date: time.Date(2024, 6, 5, 16, 40, 0, 0, time.UTC),
			Items: []entity.TransactionItem{
				{ProductID: "P003", ProductName: "Bananas", Quantity: 5, Price: 0.60, Subtotal: 3.00},
				{ProductID: "P010", ProductName: "Eggs", Quantity: 1, Price: 4.20, Subtotal: 4.20},
			},
			TotalAmount: 7.20, PaymentMethod: enum.PaymentCard, Status: enum.StatusCompleted,
		},
		{
			ID: "T003", CustomerID: "C001", CustomerName: "Aarav Sharma",
			Date: time.Date(2024, 6, 12, 11, 5, 0, 0, time.UTC),
			Items: []entity.TransactionItem{
				{ProductID: "P005", ProductName: "Basmati Rice", Quantity: 1, Price: 12.00, Subtotal: 12.00},
				{ProductID: "P007", ProductName: "Chicken Breast", Quantity: 2, Price: 5.40, Subtotal: 10.80},
			},
			TotalAmount: 22.80, PaymentMethod: enum.PaymentMobile, Status: enum.StatusCompleted,
		},
		{
			ID: "T004", CustomerID: "C003", CustomerName: "Rohan Gupta",
			Date: time.Date(2024, 6, 18, 9, 30, 0, 0, time.UTC),
			Items: []entity.TransactionItem{
				{ProductID: "P004", ProductName: "Apples", Quantity: 3, Price: 1.80, Subtotal: 5.40},
				{ProductID: "P008", ProductName: "Tomatoes", Quantity: 2, Price: 2.20, Subtotal: 4.40},
				{ProductID: "P009", ProductName: "Spinach", Quantity: 1, Price: 3.10, Subtotal: 3.10},
			},
			TotalAmount: 12.90, PaymentMethod: enum.PaymentCash, Status: enum.StatusCompleted,
		},
		{
			ID: "T005", CustomerID: "C002", CustomerName: "Meera Patel",
			Date: time.Date(2024, 6, 24, 18, 20, 0, 0, time.UTC),
			Items: []entity.TransactionItem{
				{ProductID: "P002", ProductName: "Cheddar Cheese", Quantity: 1, Price: 6.25, Subtotal: 6.25},
			},
			TotalAmount: 6.25, PaymentMethod: enum.PaymentCard, Status: enum.StatusCompleted,
		},
	}
}
