package services

import "lazshoppe/internal/models"

type StepState string

const (
	StepDone    StepState = "done"
	StepActive  StepState = "active"
	StepPending StepState = "pending"
)

type TrackingStep struct {
	Title string    `json:"title"`
	State StepState `json:"state"`
}

type Tracking struct {
	Steps     []TrackingStep `json:"steps"`
	Cancelled bool           `json:"cancelled"`
}

var trackingTitles = [4]string{
	"Order Confirmation",
	"Packed",
	"Out for Delivery",
	"Delivered",
}

// ProjectTracking maps an order status to the fixed 4-step timeline. The
// projection is pure and total: unknown statuses read as Pending, matching
// how the storefront defaults blank statuses.
func ProjectTracking(status string) Tracking {
	steps := make([]TrackingStep, len(trackingTitles))
	for i, title := range trackingTitles {
		steps[i] = TrackingStep{Title: title, State: StepPending}
	}

	if models.OrderStatus(status) == models.OrderCancelled {
		return Tracking{Steps: steps, Cancelled: true}
	}

	active := 0
	switch models.OrderStatus(status) {
	case models.OrderPacked:
		active = 1
	case models.OrderOutForDelivery:
		active = 2
	case models.OrderDelivered:
		active = len(steps)
	}

	for i := 0; i < active; i++ {
		steps[i].State = StepDone
	}
	if active < len(steps) {
		steps[active].State = StepActive
	}

	return Tracking{Steps: steps}
}
