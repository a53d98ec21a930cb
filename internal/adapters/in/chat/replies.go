package chat

import (
	"fmt"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/services"
)

const (
	replyWelcome = "Welcome to the Order Management System!\n" +
		"Please enter the customer name to start a new order."
	replyInvalidCustomerName = "Please enter a valid customer name."
	replyInvalidQuantity     = "Please enter a valid quantity"
	replyInvalidFormat       = "Invalid format. Please use: ITEMCODE QUANTITY\n" +
		"Example: S755 1"
	replyNoActiveOrder  = "No active order."
	replyOrderCancelled = "Order cancelled."
)

func replyOrderStarted(customerName string) string {
	return fmt.Sprintf("Starting order for %s\n"+
		"Enter items in format: ITEMCODE QUANTITY\n"+
		"Example: S755 1\n"+
		"Type 'done' to complete the order or 'cancel' to cancel.", customerName)
}

func replyItemAdded(result commands.AddItemResult) string {
	return fmt.Sprintf("Added: %s - %sP - %s\n"+
		"Enter next item or type 'done' to complete order.",
		result.Code, result.Quantity, services.FormatPrice(result.Total))
}

func replyUnknownItemCode(code string) string {
	return fmt.Sprintf("Item code '%s' not recognized", code)
}

func replyNoSuitableSize(quantity kernel.Quantity) string {
	return fmt.Sprintf("No suitable size available for quantity %s", quantity)
}
